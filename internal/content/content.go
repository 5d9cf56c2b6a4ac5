// Package content holds the static portfolio data rendered by the page.
package content

import "strconv"

// Highlight is one of the focus-area cards in the about section.
type Highlight struct {
	Icon        string
	Color       string
	Title       string
	Description string
}

type Job struct {
	Period      string
	Role        string
	Company     string
	Location    string
	Description []string
	Icon        string
}

type Skill struct {
	Name  string
	Years int
	Level int // percent
}

// YearsLabel renders the experience length, e.g. "1 year" or "2 years".
func (s Skill) YearsLabel() string {
	if s.Years == 1 {
		return "1 year"
	}
	return strconv.Itoa(s.Years) + " years"
}

type Language struct {
	Name        string
	Proficiency string
}

type Value struct {
	Title       string
	Description string
}

type Education struct {
	Degree      string
	Institution string
	Location    string
	Period      string
	Icon        string
}

type Award struct {
	Title       string
	Date        string
	Description string
}

type Contact struct {
	Phone       string
	Email       string
	LinkedInURL string
}

// Blob is a floating gradient circle in the page background.
type Blob struct {
	Size     int // px
	Left     int // percent
	Top      int // percent
	RGB      string
	Duration int // seconds
	Delay    int // seconds
}

var Highlights = []Highlight{
	{Icon: "lucide:search", Color: "text-blue-400", Title: "SEO Strategy", Description: "Developing comprehensive SEO strategies for diverse clients"},
	{Icon: "lucide:trending-up", Color: "text-purple-400", Title: "Analytics", Description: "Data-driven approach to measure and improve performance"},
	{Icon: "lucide:code", Color: "text-blue-400", Title: "Technical SEO", Description: "Identifying and resolving technical issues affecting rankings"},
	{Icon: "lucide:layers", Color: "text-purple-400", Title: "Digital Marketing", Description: "Comprehensive digital marketing solutions for growth"},
}

var Jobs = []Job{
	{
		Period:   "November 2024 - Present",
		Role:     "Founder",
		Company:  "Shazar Digital Space",
		Location: "Karachi",
		Description: []string{
			"As the founder and lead strategist, I help brands grow through innovative digital marketing solutions and impactful online strategies.",
			"Oversee creative direction, develop data-driven marketing campaigns, and ensure alignment with client goals.",
			"Work closely with businesses to build their digital presence and drive measurable results across SEO, content strategy, social media, and brand development.",
		},
	},
	{
		Period:   "November 2024 - Present",
		Role:     "Senior SEO Executive",
		Company:  "Intellects Solutions",
		Location: "Karachi",
		Description: []string{
			"Lead strategic SEO initiatives to drive organic growth and enhance online visibility for diverse clients.",
			"Develop and implement advanced SEO strategies tailored to industry-specific goals.",
			"Conduct in-depth keyword research, competitor analysis, and market trend assessments.",
			"Oversee comprehensive website audits, technical SEO enhancements, and local SEO optimizations.",
			"Mentor junior team members, fostering skill development and ensuring high-quality results.",
		},
	},
	{
		Period:   "October 2023 - November 2024",
		Role:     "SEO Executive",
		Company:  "Crystallite Pak Pvt Ltd",
		Location: "Karachi",
		Description: []string{
			"Managed multiple SEO projects independently, ensuring efficient execution and delivery.",
			"Conducted technical audits to identify crawling and indexing challenges, leveraging opportunities for performance enhancement.",
			"Demonstrated expertise in Google Analytics, Google Search Console, Google Tag Manager, and Google Cloud Platform.",
		},
	},
	{
		Period:   "June 2023 - September 2023",
		Role:     "Jr. SEO Executive",
		Company:  "Crystallite Pak Pvt Ltd",
		Location: "Karachi",
		Description: []string{
			"Developed and executed SEO strategies, roadmaps, and timelines for diverse existing clients.",
			"Collaborated with the content team to produce high-quality, informative SEO-optimized content incorporating targeted keywords.",
			"Conducted comprehensive keyword research encompassing local, nationwide, transactional, and informational keywords.",
		},
	},
	{
		Period:   "August 2022 - September 2022",
		Role:     "Engineering Trainee",
		Company:  "Pakistan International Airlines",
		Location: "Karachi",
		Description: []string{
			"Gained hands-on experience in various divisions including Line maintenance, Base maintenance, and Powerhaul division.",
			"Explored different technical workshops including Electrical shop, Radio shop, Battery shop, Digital shop, and more.",
			"Studied aircraft systems including communication systems, TECAS system, Navigation map, and Radar systems on multiple aircraft models.",
			"Received mentorship from experienced professionals in aviation maintenance and engineering.",
		},
		Icon: "lucide:plane",
	},
}

var Skills = []Skill{
	{Name: "Google Search Console", Years: 1, Level: 90},
	{Name: "Data Analysis & Reporting", Years: 2, Level: 85},
	{Name: "Google Tag Manager", Years: 2, Level: 80},
	{Name: "Keyword Research & Analysis", Years: 2, Level: 95},
	{Name: "SEO Strategy Development & Execution", Years: 1, Level: 85},
	{Name: "Google Analytics", Years: 2, Level: 90},
	{Name: "Technical SEO & Site Audits", Years: 2, Level: 85},
}

var Languages = []Language{
	{Name: "English", Proficiency: "Fluent"},
}

var Values = []Value{
	{Title: "Time Management", Description: "Dedicating time to exploring new SEO techniques and digital marketing strategies in-depth."},
	{Title: "Personal Growth", Description: "Committed to self-improvement and staying informed about industry developments."},
	{Title: "Empowerment", Description: "Helping and motivating others to reach their potential, fostering a culture of growth."},
}

var Schools = []Education{
	{
		Degree:      "BS in Electronics Engineering",
		Institution: "Sir Syed University of Engineering & Technology",
		Location:    "Karachi",
		Period:      "December 2018 - March 2023",
		Icon:        "lucide:graduation-cap",
	},
	{
		Degree:      "HSC in Pre-Engineering",
		Institution: "Government College For Men Nazimabad",
		Location:    "Karachi",
		Period:      "October 2016 - May 2018",
		Icon:        "lucide:book-open",
	},
	{
		Degree:      "SSC in Computer Science",
		Institution: "Shaheen Academy School",
		Location:    "Karachi",
		Period:      "April 2014 - April 2016",
		Icon:        "lucide:briefcase-business",
	},
}

var Awards = []Award{
	{
		Title:       "Google Digital Marketing & E-commerce Certificate",
		Date:        "September 2024",
		Description: "Completed seven courses with hands-on, practice-based assessments for entry-level roles in Digital Marketing and E-commerce.",
	},
	{
		Title:       "Google My Business",
		Date:        "August 2024",
		Description: "Awarded for excellence in GMB management, driving visibility and engagement for businesses.",
	},
	{
		Title:       "Award for Final Year Projects Exhibition 2023",
		Date:        "March 2023",
		Description: "Recognized for the project 'Smart Brain Computer Interface for Controlling and Monitoring of Medical Bed' at Sir Syed University of Engineering and Technology.",
	},
	{
		Title:       "Innovation of the Year 2023",
		Date:        "January 2023",
		Description: "Awarded at INNOVO-TECH 2023, part of the National Tournament STREAM Xtreme 2023, for the groundbreaking Smart Brain-Computer Interface project.",
	},
}

var ContactInfo = Contact{
	Phone:       "0313-8850215",
	Email:       "shazarali892@gmail.com",
	LinkedInURL: "https://linkedin.com/in/shazar-ali",
}

var Blobs = []Blob{
	{Size: 300, Left: 10, Top: 10, RGB: "171, 104, 132", Duration: 10, Delay: 0},
	{Size: 400, Left: 50, Top: 30, RGB: "121, 164, 205", Duration: 12, Delay: 2},
	{Size: 250, Left: 80, Top: 60, RGB: "192, 173, 207", Duration: 15, Delay: 4},
	{Size: 350, Left: 20, Top: 70, RGB: "168, 196, 221", Duration: 13, Delay: 1},
	{Size: 200, Left: 70, Top: 20, RGB: "22, 204, 201", Duration: 11, Delay: 3},
}

// OutboundLinks are the external targets reachable through /out/:target.
var OutboundLinks = map[string]string{
	"linkedin": ContactInfo.LinkedInURL,
}
