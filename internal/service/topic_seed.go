package service

import "ai-interview-be/internal/entity"

var defaultDifficultyLevels = []string{"beginner", "intermediate", "advanced"}

var defaultTopics = []entity.InterviewTopic{
	{
		Name:        "Data Structures & Algorithms",
		Category:    "Software Engineering",
		Icon:        "🧮",
		Description: "Arrays, linked lists, trees, graphs, sorting, searching, dynamic programming, and complexity analysis.",
		Subtopics:   []string{"Arrays & Strings", "Linked Lists", "Trees & BST", "Graphs", "Dynamic Programming", "Sorting & Searching", "Stacks & Queues", "Hash Tables", "Complexity Analysis"},
	},
	{
		Name:        "Object-Oriented Programming",
		Category:    "Software Engineering",
		Icon:        "🏗️",
		Description: "OOP principles, design patterns, SOLID principles, abstraction, polymorphism, and real-world design.",
		Subtopics:   []string{"Classes & Objects", "Inheritance", "Polymorphism", "Encapsulation", "Abstraction", "SOLID Principles", "Design Patterns", "UML Diagrams"},
	},
	{
		Name:        "Database Management (DBMS)",
		Category:    "Software Engineering",
		Icon:        "🗄️",
		Description: "SQL, normalization, transactions, indexing, query optimization, and database design.",
		Subtopics:   []string{"SQL Queries", "Normalization", "ER Diagrams", "Transactions & ACID", "Indexing", "Joins", "Stored Procedures", "NoSQL vs SQL", "Query Optimization"},
	},
	{
		Name:        "Operating Systems",
		Category:    "Software Engineering",
		Icon:        "⚙️",
		Description: "Process management, memory management, CPU scheduling, deadlocks, and file systems.",
		Subtopics:   []string{"Processes & Threads", "CPU Scheduling", "Memory Management", "Virtual Memory", "Deadlocks", "File Systems", "Synchronization", "Paging & Segmentation"},
	},
	{
		Name:        "Computer Networks",
		Category:    "Software Engineering",
		Icon:        "🌐",
		Description: "OSI model, TCP/IP, HTTP, DNS, routing, subnetting, and network security.",
		Subtopics:   []string{"OSI Model", "TCP/IP", "HTTP/HTTPS", "DNS", "Routing", "Subnetting", "Firewalls", "Load Balancing", "WebSockets"},
	},
	{
		Name:        "System Design",
		Category:    "Software Engineering",
		Icon:        "📐",
		Description: "Scalable system architecture, load balancing, caching, databases, microservices, and distributed systems.",
		Subtopics:   []string{"Scalability", "Load Balancing", "Caching Strategies", "Database Sharding", "Microservices", "Message Queues", "CDN", "API Design", "CAP Theorem"},
	},
	{
		Name:        "Go Programming",
		Category:    "Programming Languages",
		Icon:        "🐹",
		Description: "Go fundamentals, interfaces, goroutines, channels, error handling, and idiomatic project layout.",
		Subtopics:   []string{"Types & Interfaces", "Goroutines", "Channels & Select", "Context", "Error Handling", "Generics", "Testing", "Memory Model", "Modules"},
	},
	{
		Name:        "JavaScript & Web",
		Category:    "Programming Languages",
		Icon:        "🟨",
		Description: "JavaScript fundamentals, async programming, DOM, closures, React, and modern ES6+ features.",
		Subtopics:   []string{"Closures", "Promises & Async/Await", "Event Loop", "Prototypes", "ES6+ Features", "DOM Manipulation", "React Concepts", "TypeScript Basics", "REST APIs"},
	},
	{
		Name:        "Machine Learning",
		Category:    "Data Science",
		Icon:        "🤖",
		Description: "ML algorithms, classification, regression, neural networks, evaluation metrics, and feature engineering.",
		Subtopics:   []string{"Linear Regression", "Logistic Regression", "Decision Trees", "SVM", "Neural Networks", "Overfitting & Regularization", "Feature Engineering", "Model Evaluation", "Ensemble Methods"},
	},
	{
		Name:        "Behavioral Interview",
		Category:    "Soft Skills",
		Icon:        "🤝",
		Description: "Leadership, teamwork, conflict resolution, problem-solving, and STAR method responses.",
		Subtopics:   []string{"Tell Me About Yourself", "Leadership", "Teamwork", "Conflict Resolution", "Failure & Learning", "Problem Solving", "Time Management", "Why This Company"},
	},
}
