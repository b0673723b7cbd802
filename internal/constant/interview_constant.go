package constant

const (
	// Sent upstream right after connect so the interviewer speaks first.
	KickoffInstruction = "[SYSTEM] The candidate has joined. Begin the interview now: introduce yourself briefly and ask your first question."

	// Sent once when the candidate stays silent after the interviewer finished speaking.
	NudgeInstruction = "[SYSTEM] The candidate has been silent for a while. Gently check in and repeat or rephrase your last question."

	CodeShareInstructionFmt = `[CODE SUBMISSION] The candidate shared the following %s code from the editor:

` + "```%s\n%s\n```" + `

Review it as a pair-programming partner. Point out bugs or missed edge cases with hints rather than answers, and ask about its time and space complexity. Keep your spoken reply short.`

	CodeRunInstructionFmt = `[CODE EXECUTION] The candidate ran their %s code.
Status: %s
Stdout:
%s
Stderr:
%s
Compile output:
%s

Comment briefly on the result. If it failed, help them debug with a hint.`

	CandidateCodeEntryFmt = "[Shared code (%s)]\n```%s\n%s\n```"
)

const (
	StatusConnecting = "Connecting to AI interviewer..."
	StatusConnected  = "Connected! Interview starting..."

	ErrSessionNotFound     = "Session not found"
	ErrSessionInUse        = "This interview is already running in another window"
	ErrUpstreamUnavailable = "Could not connect to the AI interviewer. Please try again."
	ErrUpstreamLost        = "Lost connection to the AI interviewer"
)

const (
	ErrTopicNotFound      = "Topic not found"
	ErrNoTranscript       = "No transcript available"
	ErrNoFeedback         = "No feedback generated yet"
	ErrOnlyPDF            = "Only PDF files are accepted"
	ErrFileTooLarge       = "File too large (max 10MB)"
	ErrNoResumeText       = "Could not extract text from PDF"
	ErrResumeRequired     = "Resume text is required"
	ErrJobDescRequired    = "Job description is required"
	ErrAIUnavailable      = "AI service is not configured"
	DefaultCustomJobTitle = "Software Engineer"
)
