package resume

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BulletDelimiter separates list items in a section body.
const BulletDelimiter = "•"

// Content is the copy shown in a section's modal.
type Content struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Items splits the body on the bullet delimiter, dropping empty segments.
func (c Content) Items() []string {
	parts := strings.Split(c.Body, BulletDelimiter)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// IsList reports whether the body renders as a bullet list rather than a
// single paragraph.
func (c Content) IsList() bool {
	return len(c.Items()) > 1
}

// ErrUnknownSection is returned when an override file names a section that
// does not exist.
var ErrUnknownSection = errors.New("unknown section")

// Registry maps every section to its content. It is immutable; reloads
// produce a new Registry.
type Registry struct {
	content [sectionCount]Content
}

// DefaultRegistry returns the built-in copy.
func DefaultRegistry() *Registry {
	r := &Registry{}
	r.content = defaultContent
	return r
}

// Lookup returns the content for id. ok is false only for ids outside the
// declared set; callers render a "content not available" fallback then.
func (r *Registry) Lookup(id SectionID) (Content, bool) {
	if r == nil || !id.Valid() {
		return Content{}, false
	}
	return r.content[id], true
}

type overrideFile struct {
	Sections map[string]Content `yaml:"sections"`
}

// LoadRegistry reads a YAML override file and merges it over the defaults.
// A missing file yields the defaults without error.
//
//	sections:
//	  skills:
//	    title: Core Skills
//	    body: Go • Distributed systems • Terminal UIs
func LoadRegistry(path string) (*Registry, error) {
	r := DefaultRegistry()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return r, fmt.Errorf("reading content: %w", err)
	}

	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return r, fmt.Errorf("parsing content: %w", err)
	}

	for name, c := range f.Sections {
		id, ok := ParseSectionID(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return DefaultRegistry(), fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
		if t := strings.TrimSpace(c.Title); t != "" {
			r.content[id].Title = t
		}
		if b := strings.TrimSpace(c.Body); b != "" {
			r.content[id].Body = b
		}
	}
	return r, nil
}

var defaultContent = [sectionCount]Content{
	SectionSummary: {
		Title: "Professional Summary",
		Body: "Senior Software Engineer with 7+ years of experience delivering enterprise-grade solutions across financial services, healthcare, and technology sectors. " +
			"Proven track record of leading full-stack development initiatives, modernizing legacy systems, and implementing scalable architectures. " +
			"Currently serving as Co-Lead Developer at Build and Serve, specializing in AI-assisted development and code optimization strategies.",
	},
	SectionSkills: {
		Title: "Core Technical Skills",
		Body: "Full-Stack Development • System Architecture • Database Design • API Development • Cloud Computing • DevOps Implementation • " +
			"Code Review & Quality Assurance • Performance Optimization • Legacy System Modernization • Team Leadership • Technical Documentation • Agile/Scrum Methodologies",
	},
	SectionTech: {
		Title: "Technology Stack",
		Body: "Frontend: Angular (v19/20), Next.js (v14+), React, TypeScript, HTML5, CSS3 • " +
			"Backend: C# (.NET 8+), Node.js, Python (3.13), Go (1.24), Ruby on Rails • " +
			"Cloud: AWS (Bedrock, Lambda, S3, SageMaker), Azure DevOps • " +
			"Databases: Oracle 23ai, MySQL (8.x), SQL Server, PostgreSQL • " +
			"Tools: Entity Framework, SSIS, Docker, Git, CI/CD Pipelines",
	},
	SectionProjects: {
		Title: "Key Projects",
		Body: "AI Code Rehabilitation Platform - Led development of proprietary system for optimizing AI-generated code • " +
			"Banking Application Modernization - Migrated legacy SSRS systems to modern MVC architecture • " +
			"Healthcare Data Integration - Built SSIS packages processing government compliance data • " +
			"Enterprise Web Portal Migration - Converted ASP.NET applications to Angular 7 with .NET Core 2.2",
	},
	SectionExperience: {
		Title: "Professional Experience",
		Body: "Build and Serve (2024-Present): Co-Lead/Full Stack Developer - Leading multi-project development initiatives • " +
			"Bank of America (2019-2021): Software Engineer - Full-cycle development in .NET ecosystem • " +
			"Atrium Health (2018-2019): Software Engineer - Healthcare system modernization • " +
			"Previous roles at COLLABERA/RELIAS and RobertHalf Technology",
	},
	SectionEducation: {
		Title: "Education & Training",
		Body: "Bachelor of Science in Computer Science, University of North Carolina Charlotte (2016) • Minor in Japanese Language Studies • " +
			"Classical Piano Accompanist for Music Majors • " +
			"Continuous professional development in cloud technologies, AI/ML, and modern development frameworks",
	},
	SectionCertifications: {
		Title: "Professional Development",
		Body: "Pursuing AWS Cloud Practitioner and Solutions Architect certifications • Advanced training in AI/ML integration with enterprise systems • " +
			"Specialized coursework in system architecture and performance optimization • " +
			"Regular participation in technology conferences and professional development workshops",
	},
	SectionAchievements: {
		Title: "Key Achievements",
		Body: "Successfully migrated mission-critical banking applications serving thousands of daily users • " +
			"Implemented zero-downtime deployment strategies for healthcare systems • " +
			"Led cross-functional teams in delivering complex integration projects • Established code quality standards and review processes • " +
			"Mentored junior developers and contributed to team knowledge sharing initiatives",
	},
	SectionLeadership: {
		Title: "Leadership Experience",
		Body: "Co-Lead Developer role managing multiple concurrent projects • Technical team leadership and mentoring responsibilities • " +
			"Cross-functional collaboration with product, marketing, and business stakeholders • Code review and quality assurance oversight • " +
			"Training program development for new team members • Agile/Scrum process implementation and optimization",
	},
	SectionTechnical: {
		Title: "Technical Expertise",
		Body: "Advanced proficiency in enterprise software architecture • Database optimization and performance tuning • " +
			"API design and microservices implementation • Cloud infrastructure management and deployment • " +
			"Security best practices and compliance requirements • Integration with third-party systems and services • " +
			"Automated testing and continuous integration",
	},
	SectionManagement: {
		Title: "Project Management",
		Body: "Agile/Scrum methodology implementation • Sprint planning and backlog management • Stakeholder communication and requirement gathering • " +
			"Risk assessment and mitigation strategies • Resource allocation and timeline management • Quality assurance and delivery oversight • " +
			"Team coordination and performance optimization",
	},
	SectionStrategy: {
		Title: "Strategic Initiatives",
		Body: "Technology roadmap planning and implementation • Legacy system modernization strategies • AI integration and automation opportunities • " +
			"Performance optimization and scalability planning • Cost reduction through efficient architecture design • " +
			"Innovation initiatives and emerging technology adoption • Business process improvement through technology solutions",
	},
}
