package loader

import "github.com/sanjayvyas/portfolio/internal/models"

// FallbackProjects returns the built-in project list served when loading fails
// as a whole. The order is the display order.
func FallbackProjects() []models.ProjectRecord {
	return []models.ProjectRecord{
		{
			Title:        "E-Commerce Platform",
			Description:  "A full-stack e-commerce application built with React, Node.js, and MongoDB. Features include user authentication, product management, shopping cart, and payment integration.",
			Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"},
			GitHub:       "https://github.com/sanjayvyas/ecommerce-platform",
			Live:         "https://ecommerce-demo.com",
			Icon:         "fas fa-shopping-cart",
			Featured:     true,
		},
		{
			Title:        "Task Management App",
			Description:  "A collaborative task management application with real-time updates, drag-and-drop functionality, and team collaboration features.",
			Technologies: []string{"React", "Firebase", "Material-UI", "Socket.io"},
			GitHub:       "https://github.com/sanjayvyas/task-manager",
			Live:         "https://task-manager-demo.com",
			Icon:         "fas fa-tasks",
			Featured:     true,
		},
		{
			Title:        "Weather Dashboard",
			Description:  "A weather application that displays current weather conditions and forecasts using OpenWeatherMap API with beautiful visualizations.",
			Technologies: []string{"JavaScript", "HTML5", "CSS3", "Chart.js"},
			GitHub:       "https://github.com/sanjayvyas/weather-dashboard",
			Live:         "https://weather-demo.com",
			Icon:         "fas fa-cloud-sun",
			Featured:     true,
		},
		{
			Title:        "Portfolio Website",
			Description:  "A responsive portfolio website built with modern web technologies, featuring smooth animations and professional design.",
			Technologies: []string{"HTML5", "CSS3", "JavaScript", "Font Awesome"},
			GitHub:       "https://github.com/sanjayvyas/portfolio",
			Live:         "https://sanjayvyas.github.io",
			Icon:         "fas fa-user",
			Featured:     true,
		},
		{
			Title:        "Blog Platform",
			Description:  "A content management system for blogs with markdown support, user authentication, and admin dashboard.",
			Technologies: []string{"Next.js", "PostgreSQL", "Prisma", "Tailwind CSS"},
			GitHub:       "https://github.com/sanjayvyas/blog-platform",
			Live:         "https://blog-demo.com",
			Icon:         "fas fa-blog",
			Featured:     true,
		},
		{
			Title:        "Chat Application",
			Description:  "Real-time chat application with private messaging, group chats, and file sharing capabilities.",
			Technologies: []string{"React", "Socket.io", "Express", "MongoDB"},
			GitHub:       "https://github.com/sanjayvyas/chat-app",
			Live:         "https://chat-demo.com",
			Icon:         "fas fa-comments",
			Featured:     true,
		},
	}
}
