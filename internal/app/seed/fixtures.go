// internal/app/seed/fixtures.go
package seed

import (
	profilestore "github.com/nitinpratap/folio/internal/app/store/profiles"
	"github.com/nitinpratap/folio/internal/domain/models"
)

func ptr[T any](v T) *T { return &v }

func fixtureProfile() profilestore.Update {
	return profilestore.Update{
		Name:  ptr("Nitin Pratap"),
		Email: ptr("pratapnitin87@gmail.com"),
		Bio: ptr("Full Stack Developer specializing in scalable web apps, ML-driven products, " +
			"and modern DevOps workflows. Passionate about AI, distributed systems, and " +
			"open-source contributions."),
		Education: ptr([]string{"B.Tech CSE, IIIT Kalyani (2022–2026)"}),
		Links: &models.ProfileLinks{
			GitHub:    "https://github.com/Nitinpratap22061",
			LinkedIn:  "https://www.linkedin.com/in/nitin-pratap-a0a555268",
			Portfolio: "https://nitinpratap.vercel.app/",
		},
	}
}

func fixtureSkills() []models.Skill {
	return []models.Skill{
		{SkillName: "JavaScript", Level: models.LevelAdvanced, Top: true},
		{SkillName: "TypeScript", Level: models.LevelAdvanced, Top: true},
		{SkillName: "React", Level: models.LevelAdvanced, Top: true},
		{SkillName: "Next.js", Level: models.LevelAdvanced, Top: true},
		{SkillName: "Node.js", Level: models.LevelAdvanced, Top: true},
		{SkillName: "Express", Level: models.LevelAdvanced},
		{SkillName: "MongoDB", Level: models.LevelIntermediate, Top: true},
		{SkillName: "PostgreSQL", Level: models.LevelIntermediate},
		{SkillName: "Redis", Level: models.LevelIntermediate},
		{SkillName: "Kafka", Level: models.LevelIntermediate},
		{SkillName: "Python", Level: models.LevelIntermediate, Top: true},
		{SkillName: "FastAPI", Level: models.LevelIntermediate},
		{SkillName: "Docker", Level: models.LevelIntermediate},
		{SkillName: "Kubernetes", Level: models.LevelIntermediate},
		{SkillName: "AWS", Level: models.LevelIntermediate},
		{SkillName: "Azure", Level: models.LevelBeginner},
		{SkillName: "LangChain", Level: models.LevelIntermediate},
		{SkillName: "Weaviate", Level: models.LevelIntermediate},
		{SkillName: "LLMs", Level: models.LevelIntermediate},
		{SkillName: "Tailwind CSS", Level: models.LevelAdvanced},
		{SkillName: "CI/CD", Level: models.LevelIntermediate},
		{SkillName: "Jest", Level: models.LevelIntermediate},
		{SkillName: "Cypress", Level: models.LevelBeginner},
	}
}

func fixtureProjects() []models.Project {
	return []models.Project{
		{
			Title:       "AI-Powered PDF Chatbot",
			Description: "Chat with PDFs using LangChain, Groq, and Pinecone. Built RAG pipelines and custom embeddings.",
			Skills:      []string{"Python", "LangChain", "Pinecone", "Groq", "FastAPI"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/nitinpratap/pdf-chat",
				Demo:   "https://pdfchat.nitinpratap.dev",
			},
		},
		{
			Title:       "Portfolio Website",
			Description: "Modern, responsive portfolio built with React, Vite, and TailwindCSS.",
			Skills:      []string{"React", "TypeScript", "Vite", "Tailwind CSS"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/nitinpratap/portfolio",
				Demo:   "https://nitinpratap.dev",
			},
		},
		{
			Title:       "Realtime Chat App",
			Description: "Realtime chat app with JWT authentication, WebSocket messaging, and group chat features.",
			Skills:      []string{"Node.js", "Express", "Socket.io", "MongoDB", "JWT"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/nitinpratap/chat-app",
			},
		},
		{
			Title:       "Task Management API",
			Description: "REST API with PostgreSQL, Prisma, and role-based authentication. Supports GraphQL as well.",
			Skills:      []string{"Node.js", "Express", "PostgreSQL", "Prisma"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/nitinpratap/task-api",
			},
		},
		{
			Title:       "Blog CMS",
			Description: "Markdown-based blogging platform with custom admin dashboard and server-side rendering.",
			Skills:      []string{"Next.js", "MongoDB", "Tailwind CSS"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/nitinpratap/blog-cms",
			},
		},
		{
			Title:       "E-commerce Platform",
			Description: "Full-stack ecommerce app with Stripe integration, product search, and order management.",
			Skills:      []string{"Next.js", "Node.js", "MongoDB", "Stripe", "Tailwind"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/nitinpratap/ecommerce",
			},
		},
		{
			Title:       "DevOps Pipeline Automation",
			Description: "CI/CD pipeline automation for microservices using GitHub Actions, Docker, and Kubernetes.",
			Skills:      []string{"Docker", "Kubernetes", "GitHub Actions", "Node.js"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/nitinpratap/devops-pipeline",
			},
		},
		{
			Title:       "AI SaaS Starter Kit",
			Description: "Boilerplate SaaS platform with Stripe billing, Next.js API routes, and AI integrations.",
			Skills:      []string{"Next.js", "Stripe", "OpenAI API", "PostgreSQL"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/nitinpratap/ai-saas-kit",
			},
		},
		{
			Title:       "Personal Portfolio Backend",
			Description: "Backend service for managing portfolio data (projects, skills, work experience).",
			Skills:      []string{"Go", "MongoDB"},
			Links: models.ProjectLinks{
				GitHub: "https://github.com/Nitinpratap22061/personal_preview",
			},
		},
	}
}

func fixtureWork() []models.Work {
	return []models.Work{
		{
			Company: "Predusk (Intern)",
			Role:    "AI/ML Intern",
			Start:   "2025-06",
			End:     "2025-08",
			Highlights: []string{
				"Built a scalable RAG-based document search system",
				"Optimized LLM evaluation workflows, cutting inference time by 30%",
				"Implemented semantic search using vector databases",
			},
		},
		{
			Company: "Open Source Contributions",
			Role:    "Contributor",
			Start:   "2024-01",
			End:     "Present",
			Highlights: []string{
				"Contributed to LangChain core repository and ecosystem tools",
				"Built Next.js plugins for static site generation",
				"Maintained CI/CD workflows for open-source libraries",
			},
		},
		{
			Company: "Freelance Developer",
			Role:    "Full Stack Developer",
			Start:   "2023-04",
			End:     "Present",
			Highlights: []string{
				"Delivered 10+ full-stack web apps for startups and SMEs",
				"Set up automated CI/CD pipelines reducing deployment friction by 50%",
				"Built ML-powered chatbots for ecommerce clients",
			},
		},
		{
			Company: "IIIT Kalyani Research",
			Role:    "Student Researcher",
			Start:   "2024-07",
			End:     "2025-05",
			Highlights: []string{
				"Worked on NLP tasks for Hindi-English translation models",
				"Implemented low-latency serving for LLM fine-tuning",
			},
		},
	}
}
