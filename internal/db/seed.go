package db

import (
	"time"

	"gorm.io/gorm"
)

// SeedWorks inserts the sample portfolio projects when the works table
// is empty. Re-running it against a populated database is a no-op.
func SeedWorks(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&Work{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	base := time.Now().Add(-time.Duration(len(sampleWorks)) * time.Minute)
	for i := range sampleWorks {
		work := sampleWorks[i]
		work.ID = uint(i + 1)
		work.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		work.UpdatedAt = work.CreatedAt
		if err := gdb.Create(&work).Error; err != nil {
			return err
		}
	}
	return nil
}

var sampleWorks = []Work{
	{
		Title:           "Worktowander Dashboard",
		Date:            "2025",
		Category:        "Web Application",
		Description:     "A comprehensive admin dashboard for managing work and travel bookings. Features include user management, booking system, analytics dashboard, and real-time notifications.",
		LongDescription: "Worktowander Dashboard is a full-featured administrative interface designed to streamline the management of work and travel bookings. The platform provides an intuitive user experience with advanced filtering, search capabilities, and comprehensive reporting tools. Built with modern web technologies, it ensures fast performance and responsive design across all devices.",
		Image:           "/images/works/work1.png",
		Gallery: []string{
			"/images/works/work1.png",
			"/images/works/work1-detail1.png",
			"/images/works/work1-detail2.png",
		},
		TechStack: []TechStackEntry{
			{Name: "Next.js", Icon: "/images/skills/Nextjs_logo.svg"},
			{Name: "React", Icon: "/images/skills/React_logo.svg"},
			{Name: "TypeScript", Icon: "/images/skills/Typescript_logo.svg"},
			{Name: "Tailwind CSS", Icon: "/images/skills/Tailwind_logo.svg"},
		},
		Features: []string{
			"User Authentication & Authorization",
			"Dashboard Analytics",
			"Booking Management System",
			"Real-time Notifications",
			"Responsive Design",
			"Admin Panel",
		},
		LiveURL:    "https://worktowander.vercel.app/admin/dashboard",
		GithubURL:  "https://github.com/yourusername/worktowander-dashboard",
		Challenges: "Implementing real-time notifications and ensuring optimal performance with large datasets were the main challenges. Solved using WebSocket connections and efficient data caching strategies.",
		Solutions:  "Utilized Next.js API routes for backend functionality, implemented Redis for caching, and used Socket.io for real-time features.",
		Featured:   true,
		Slug:       "worktowander-dashboard",
	},
	{
		Title:           "Furniro",
		Date:            "2024",
		Category:        "E-commerce",
		Description:     "A modern furniture e-commerce platform with product catalog, shopping cart functionality, and user authentication system.",
		LongDescription: "Furniro is a comprehensive e-commerce solution for furniture retail, featuring an intuitive product catalog with advanced filtering options, secure shopping cart functionality, and seamless user authentication. The platform provides a smooth shopping experience with responsive design and optimized performance for both desktop and mobile users.",
		Image:           "/images/works/work2.png",
		Gallery: []string{
			"/images/works/work2.png",
			"/images/works/work2-detail1.png",
			"/images/works/work2-detail2.png",
		},
		TechStack: []TechStackEntry{
			{Name: "React", Icon: "/images/skills/React_logo.svg"},
			{Name: "JavaScript", Icon: "/images/skills/Javascript_logo.svg"},
			{Name: "CSS", Icon: "/images/skills/cSS_logo.svg"},
			{Name: "HTML5", Icon: "/images/skills/Html5_logo.svg"},
		},
		Features: []string{
			"Product Catalog with Filtering",
			"Shopping Cart Management",
			"User Authentication",
			"Responsive Design",
			"Product Search",
			"Order Management",
		},
		LiveURL:    "https://furniro-on3r.vercel.app/",
		GithubURL:  "https://github.com/yourusername/furniro",
		Challenges: "Creating an intuitive product filtering system and implementing a seamless shopping cart experience were key challenges. Solved through state management optimization and user experience design.",
		Solutions:  "Implemented React Context for state management, used localStorage for cart persistence, and created custom hooks for reusable functionality.",
		Featured:   true,
		Slug:       "furniro",
	},
	{
		Title:           "University Library",
		Date:            "2023",
		Category:        "Management System",
		Description:     "A comprehensive library management system for universities with book catalog, member management, and borrowing operations.",
		LongDescription: "The University Library Management System is a full-featured platform designed to streamline library operations in educational institutions. It includes comprehensive book catalog management, member registration and tracking, borrowing and return operations, and detailed reporting capabilities. The system ensures efficient library operations with user-friendly interfaces for both librarians and students.",
		Image:           "/images/works/work3.png",
		Gallery: []string{
			"/images/works/work3.png",
			"/images/works/work3-detail1.png",
			"/images/works/work3-detail2.png",
		},
		TechStack: []TechStackEntry{
			{Name: "Next.js", Icon: "/images/skills/Nextjs_logo.svg"},
			{Name: "React", Icon: "/images/skills/React_logo.svg"},
			{Name: "TypeScript", Icon: "/images/skills/Typescript_logo.svg"},
			{Name: "Tailwind CSS", Icon: "/images/skills/Tailwind_logo.svg"},
		},
		Features: []string{
			"Book Catalog Management",
			"Member Registration",
			"Borrowing & Return System",
			"Fine Calculation",
			"Search & Filter",
			"Admin Dashboard",
		},
		LiveURL:    "https://university-library-frontend.vercel.app/sign-in",
		GithubURL:  "https://github.com/yourusername/university-library",
		Challenges: "Managing complex book borrowing logic and implementing fine calculation systems were challenging. Solved through robust database design and business logic implementation.",
		Solutions:  "Used Next.js API routes for backend operations, implemented proper authentication, and created comprehensive data validation systems.",
		Featured:   true,
		Slug:       "university-library",
	},
	{
		Title:           "E-tutor",
		Date:            "2025",
		Category:        "Education",
		Description:     "An interactive online learning platform connecting students with tutors for personalized educational experiences.",
		LongDescription: "E-Tutor is a comprehensive online learning platform that bridges the gap between students and qualified tutors. The platform features video conferencing capabilities, interactive whiteboards, progress tracking, and personalized learning paths. Built with modern web technologies, it provides a seamless educational experience with real-time collaboration tools and comprehensive assessment systems.",
		Image:           "/images/works/work4.png",
		Gallery: []string{
			"/images/works/work4.png",
			"/images/works/work4-detail1.png",
			"/images/works/work4-detail2.png",
		},
		TechStack: []TechStackEntry{
			{Name: "Vue.js", Icon: "/images/skills/Vuejs_logo.svg"},
			{Name: "JavaScript", Icon: "/images/skills/Javascript_logo.svg"},
			{Name: "CSS", Icon: "/images/skills/cSS_logo.svg"},
			{Name: "HTML5", Icon: "/images/skills/Html5_logo.svg"},
		},
		Features: []string{
			"Video Conferencing",
			"Interactive Whiteboard",
			"Progress Tracking",
			"Tutor Matching",
			"Payment Integration",
			"Mobile Responsive",
		},
		LiveURL:    "https://mithun-etutor-frontend.vercel.app/",
		GithubURL:  "https://github.com/yourusername/e-tutor",
		Challenges: "Implementing real-time video conferencing and interactive whiteboard features were complex challenges. Solved using WebRTC technology and canvas-based drawing systems.",
		Solutions:  "Integrated WebRTC for video calls, used Socket.io for real-time communication, and implemented canvas API for interactive whiteboard functionality.",
		Featured:   true,
		Slug:       "e-tutor",
	},
}
