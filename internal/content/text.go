package content

const (
	Name     = "Shazar Ali"
	Headline = "Senior SEO Executive & Digital Marketing Specialist"

	PageTitle       = "Shazar Ali - SEO & Digital Marketing Specialist"
	PageDescription = "Senior SEO Executive with expertise in digital marketing, technical SEO, and analytics"

	ProfileImageURL = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/Shazar%20-%20Linkedin-m12iFCyu75aCYOq5iAd4zIhSr0YdL8.png"
)

var (
	AboutMe = []string{
		`A dedicated SEO Executive with nearly two years of hands-on experience in managing multiple projects
		across diverse categories. Proven ability to teach and mentor others in effective project management,
		contributing to overall success.`,

		`Driven by a passion for continuous learning, I stay updated on the latest SEO trends and discoveries.
		This commitment to professional growth fuels my motivation to excel in my field and help my team
		succeed.`,

		`I value time management, personal growth, and empowerment. My goal is to leverage my skills in SEO to
		contribute to project success, expand my expertise in digital marketing, and mentor others in the field.`,
	}
)
