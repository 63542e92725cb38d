package resume

// Profile is the identity and contact text shown in the header.
type Profile struct {
	Name      string
	Headline  string
	Tagline   string
	Phone     string
	Email     string
	Link      string
	LinkLabel string
}

// DefaultProfile returns the built-in header copy. Contact fields are
// placeholders meant to be replaced through config.
func DefaultProfile() Profile {
	return Profile{
		Name:      "Justin Christopher Le",
		Headline:  "Senior Software Engineer • Charlotte, NC",
		Tagline:   "7+ Years Experience • Full-Stack Development • Enterprise Solutions",
		Phone:     "555-0100",
		Email:     "hello@example.com",
		Link:      "https://example.com",
		LinkLabel: "Build & Serve",
	}
}

// Merge returns p with every non-empty field of o applied on top.
func (p Profile) Merge(o Profile) Profile {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.Name, o.Name)
	set(&p.Headline, o.Headline)
	set(&p.Tagline, o.Tagline)
	set(&p.Phone, o.Phone)
	set(&p.Email, o.Email)
	set(&p.Link, o.Link)
	set(&p.LinkLabel, o.LinkLabel)
	return p
}
