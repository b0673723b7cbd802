package prompt

import (
	"fmt"
	"strings"

	"ai-interview-be/pkg/resume"
)

const (
	BehavioralTopicName = "Behavioral Interview"
	FallbackTopicName   = "General Technical"
	DefaultDifficulty   = "intermediate"
)

// FallbackSubtopics are used when a session has no resolvable topic.
var FallbackSubtopics = []string{"Problem Solving", "Communication"}

var difficultyGuides = map[string]string{
	"beginner":     "Open with fundamentals and plain language. Stay encouraging, and briefly explain a concept when the candidate gets stuck.",
	"intermediate": "Blend conceptual questions with applied ones. Expect reasonable depth and probe with follow-ups.",
	"advanced":     "Go deep: scenarios, trade-offs, failure modes and edge cases. Hold the candidate to an expert bar.",
}

// topics that open the shared code editor during the interview
var codingTopics = map[string]bool{
	"Data Structures & Algorithms": true,
}

// TopicBuilder builds the system instruction for a topic interview.
type TopicBuilder struct {
	topic      string
	subtopics  []string
	difficulty string
}

func NewTopicBuilder(topic string, subtopics []string, difficulty string) *TopicBuilder {
	if _, ok := difficultyGuides[difficulty]; !ok {
		difficulty = DefaultDifficulty
	}
	return &TopicBuilder{topic: topic, subtopics: subtopics, difficulty: difficulty}
}

func (b *TopicBuilder) Build() string {
	var p strings.Builder

	fmt.Fprintf(&p, "You are a senior technical interviewer running a spoken mock interview on **%s**.\n\n", b.topic)
	writeRole(&p, "an experienced interviewer at a top tech company")
	b.writeFocus(&p)
	writeTopicRules(&p)
	if codingTopics[b.topic] {
		writeCodingSection(&p)
	}
	writeSpeakingStyle(&p)
	writeVoiceClarity(&p)

	return p.String()
}

func (b *TopicBuilder) writeFocus(p *strings.Builder) {
	focus := b.topic
	if len(b.subtopics) > 0 {
		focus = strings.Join(b.subtopics, ", ")
	}
	p.WriteString("## Interview Focus\n")
	fmt.Fprintf(p, "- Core topics: %s\n", focus)
	fmt.Fprintf(p, "- Difficulty level: %s\n", b.difficulty)
	fmt.Fprintf(p, "- %s\n\n", difficultyGuides[b.difficulty])
}

// IsCodingTopic reports whether the topic uses the code editor.
func IsCodingTopic(topic string) bool {
	return codingTopics[topic]
}

// Behavioral builds the system instruction for an HR style interview.
func Behavioral() string {
	var p strings.Builder

	p.WriteString("You are a senior interviewer running a spoken behavioral mock interview.\n\n")
	writeRole(&p, "an HR lead assessing communication, teamwork and cultural fit")
	p.WriteString("## Interview Focus\n")
	p.WriteString("- Leadership and teamwork\n")
	p.WriteString("- Conflict resolution\n")
	p.WriteString("- Problem-solving approach\n")
	p.WriteString("- Communication\n")
	p.WriteString("- Motivation and work ethic\n\n")
	p.WriteString("## Interview Rules\n")
	p.WriteString("1. Evaluate answers with the STAR method (Situation, Task, Action, Result)\n")
	p.WriteString("2. Ask questions like \"Tell me about a time when...\" or \"How would you handle...\"\n")
	p.WriteString("3. Ask for specifics when an answer stays general\n")
	p.WriteString("4. Cover 6-10 questions across different competencies\n\n")
	writeSpeakingStyle(&p)
	writeVoiceClarity(&p)

	return p.String()
}

// CustomBuilder builds a resume and job description tailored interview.
type CustomBuilder struct {
	resume         *resume.Structured
	jobDescription string
	jobTitle       string
}

func NewCustomBuilder(r *resume.Structured, jobDescription, jobTitle string) *CustomBuilder {
	if r == nil {
		r = &resume.Structured{}
	}
	return &CustomBuilder{resume: r, jobDescription: jobDescription, jobTitle: jobTitle}
}

func (b *CustomBuilder) Build() string {
	var p strings.Builder

	name := b.resume.Name
	if name == "" {
		name = "the candidate"
	}
	title := b.jobTitle
	if title == "" {
		title = "the described role"
	}

	fmt.Fprintf(&p, "You are a senior interviewer running a personalized spoken mock interview for **%s**, who is applying for **%s**.\n\n", name, title)
	writeRole(&p, "a hiring manager who has read the candidate's resume and the job description")
	b.writeProfile(&p, name)
	p.WriteString("## Job Description\n")
	p.WriteString(b.jobDescription)
	p.WriteString("\n\n")
	b.writeStrategy(&p, name)
	writeSpeakingStyle(&p)
	writeVoiceClarity(&p)

	return p.String()
}

func (b *CustomBuilder) writeProfile(p *strings.Builder, name string) {
	skills := "not specified"
	if len(b.resume.Skills) > 0 {
		skills = strings.Join(b.resume.Skills, ", ")
	}

	p.WriteString("## Candidate Profile\n")
	fmt.Fprintf(p, "- **Name**: %s\n", name)
	fmt.Fprintf(p, "- **Key Skills**: %s\n", skills)
	fmt.Fprintf(p, "- **Education**: %s\n", b.resume.Education)

	p.WriteString("- **Projects**:\n")
	projects := b.resume.Projects
	if len(projects) > 4 {
		projects = projects[:4]
	}
	if len(projects) == 0 {
		p.WriteString("  - Not specified\n")
	}
	for _, pr := range projects {
		fmt.Fprintf(p, "  - %s: %s\n", orDefault(pr.Name, "Project"), pr.Description)
	}

	p.WriteString("- **Experience**:\n")
	experience := b.resume.Experience
	if len(experience) > 3 {
		experience = experience[:3]
	}
	if len(experience) == 0 {
		p.WriteString("  - Not specified\n")
	}
	for _, e := range experience {
		fmt.Fprintf(p, "  - %s at %s: %s\n", e.Title, e.Company, e.Description)
	}
	p.WriteString("\n")
}

func (b *CustomBuilder) writeStrategy(p *strings.Builder, name string) {
	p.WriteString("## Interview Strategy\n")
	fmt.Fprintf(p, "1. Greet %s, name the role and open with a question about their background\n", name)
	p.WriteString("2. Pick concrete projects from the resume and ask about challenges and lessons learned\n")
	p.WriteString("3. Test the listed skills against what the role requires\n")
	p.WriteString("4. Ask questions the candidate would realistically face in this role\n")
	p.WriteString("5. Where the job needs skills missing from the resume, explore them tactfully\n")
	p.WriteString("6. Do not accept vague answers, dig deeper\n")
	p.WriteString("7. After 10-15 questions, close with a short spoken assessment\n\n")
}

func writeRole(p *strings.Builder, who string) {
	p.WriteString("## Your Role\n")
	fmt.Fprintf(p, "- You are %s\n", who)
	p.WriteString("- This is a voice conversation, keep every reply short and natural\n")
	p.WriteString("- Sound like a human interviewer, not a document\n\n")
}

func writeTopicRules(p *strings.Builder) {
	p.WriteString("## Interview Rules\n")
	p.WriteString("1. Introduce yourself and the focus briefly, then ask the first question\n")
	p.WriteString("2. Ask one question at a time\n")
	p.WriteString("3. Follow up on weak answers with clarifying questions or hints\n")
	p.WriteString("4. Acknowledge good answers briefly before moving on\n")
	p.WriteString("5. Raise the difficulty as the candidate shows competence\n")
	p.WriteString("6. Cover several subtopics over the interview\n")
	p.WriteString("7. Track where the candidate is strong or weak\n")
	p.WriteString("8. After 8-12 questions or about 15 minutes, thank the candidate and summarize their performance\n\n")
}

func writeCodingSection(p *strings.Builder) {
	p.WriteString("## Coding Questions\n")
	p.WriteString("- At least 3-4 questions must require the candidate to write real code\n")
	p.WriteString("- Tell the candidate to open the code editor and write their solution there\n")
	p.WriteString("- Never give the solution. Wait until the candidate shares their code\n")
	p.WriteString("- When code is shared, act as a pair-programming partner: review it, ask them to walk through it, and ask for time and space complexity\n")
	p.WriteString("- Point at bugs with hints (\"What happens with an empty input?\") instead of answers\n")
	p.WriteString("- When execution results arrive, help debug failures conversationally or discuss optimizations\n\n")
}

func writeSpeakingStyle(p *strings.Builder) {
	p.WriteString("## Speaking Style\n")
	p.WriteString("- Short, conversational sentences, no lists or formatting\n")
	p.WriteString("- Do not repeat the question unless clarifying\n")
	p.WriteString("- **After asking a question, stop and wait silently for the answer. Do not rephrase or repeat it unless you are told the candidate has been silent.**\n\n")
}

func writeVoiceClarity(p *strings.Builder) {
	p.WriteString("## Voice Clarity\n")
	p.WriteString("- The candidate's audio may be garbled or cut off\n")
	p.WriteString("- If you did not clearly understand, do not guess. Politely ask them to repeat: \"Sorry, I didn't catch that, could you say it again?\"\n")
	p.WriteString("- Only evaluate an answer you are confident you understood\n")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
