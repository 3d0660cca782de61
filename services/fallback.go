package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// Resolve substitutes the default list iff list is empty. Remote and default
// records are never mixed.
func Resolve[T any](list []T, defaults func() []T) []T {
	if len(list) == 0 && defaults != nil {
		return defaults()
	}
	return list
}

// fallbackNamespace keeps fallback ids stable across restarts.
var fallbackNamespace = uuid.MustParse("6f1c5b7e-2d0a-4b8e-9a41-3c7f0e5d9b21")

func fallbackID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(fallbackNamespace, []byte(fmt.Sprintf("%s/%d", kind, n)))
}

func DefaultProjects() []models.Project {
	return []models.Project{
		{
			ID:          fallbackID("project", 1),
			Title:       "E-Commerce Platform",
			Description: "A full-stack e-commerce application built with React, Node.js, and MongoDB. Features include user authentication, product management, and payment integration.",
			ImageURL:    "https://via.placeholder.com/400x250/3B82F6/FFFFFF?text=E-Commerce+Platform",
			GithubURL:   "https://github.com",
			LiveURL:     "https://example.com",
			TechStack:   datatypes.JSONSlice[string]{"React", "Node.js", "MongoDB", "Stripe"},
		},
		{
			ID:          fallbackID("project", 2),
			Title:       "Task Management App",
			Description: "A collaborative task management application with real-time updates, drag-and-drop functionality, and team collaboration features.",
			ImageURL:    "https://via.placeholder.com/400x250/10B981/FFFFFF?text=Task+Management+App",
			GithubURL:   "https://github.com",
			LiveURL:     "https://example.com",
			TechStack:   datatypes.JSONSlice[string]{"React", "Firebase", "Tailwind CSS", "Framer Motion"},
		},
		{
			ID:          fallbackID("project", 3),
			Title:       "Portfolio Website",
			Description: "A modern, responsive portfolio website with Three.js animations and smooth scrolling effects. Built with React and Tailwind CSS.",
			ImageURL:    "https://via.placeholder.com/400x250/8B5CF6/FFFFFF?text=Portfolio+Website",
			GithubURL:   "https://github.com",
			LiveURL:     "https://example.com",
			TechStack:   datatypes.JSONSlice[string]{"React", "Three.js", "Tailwind CSS", "Framer Motion"},
		},
		{
			ID:          fallbackID("project", 4),
			Title:       "Weather Dashboard",
			Description: "A weather application that displays current weather conditions and forecasts. Features include location-based weather and interactive maps.",
			ImageURL:    "https://via.placeholder.com/400x250/F59E0B/FFFFFF?text=Weather+Dashboard",
			GithubURL:   "https://github.com",
			LiveURL:     "https://example.com",
			TechStack:   datatypes.JSONSlice[string]{"React", "OpenWeather API", "Chart.js", "Geolocation"},
		},
	}
}

var defaultSkillNames = map[models.SkillCategory][]string{
	models.SkillCategoryFrontend: {"React", "Vue.js", "TypeScript", "Tailwind CSS", "Next.js"},
	models.SkillCategoryBackend:  {"Node.js", "Express", "Python", "Django", "PostgreSQL"},
	models.SkillCategoryTools:    {"Git", "Docker", "AWS", "Figma", "Jest"},
}

func DefaultSkills() []models.Skill {
	var skills []models.Skill
	for _, category := range models.SkillCategories {
		for _, name := range defaultSkillNames[category] {
			skills = append(skills, models.Skill{
				ID:       fallbackID("skill", len(skills)+1),
				Name:     name,
				Category: category,
			})
		}
	}
	return skills
}

func DefaultExperience() []models.Experience {
	return []models.Experience{
		{
			ID:          fallbackID("experience", 1),
			Title:       "Full-Stack Developer",
			Company:     "Tecnolusion Analytics",
			StartDate:   "2022-01-01",
			Description: "Led development of multiple React applications and implemented best practices for code quality and performance.",
			Period:      "2022 - Present",
		},
	}
}

func DefaultEducation() []models.Education {
	graduation := "2025-06-30"
	return []models.Education{
		{
			ID:             fallbackID("education", 1),
			Degree:         "Master of Computer Application",
			School:         "Oriental University",
			StartDate:      "2023-08-01",
			GraduationDate: &graduation,
			Description:    "Graduated with honors. Focused on web development and software engineering.",
			Period:         "2023-2025",
		},
	}
}
