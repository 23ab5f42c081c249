package catalog

// Role narrative templates per experience tier. The generator replaces the
// {projectTitle} placeholder with a noun phrase extracted from the title.
var (
	// EngineerRoleTemplates cover under 6 years of experience.
	EngineerRoleTemplates = []string{
		"Worked as a hands-on developer on {projectTitle}, implementing features, writing unit tests, and fixing defects under the guidance of senior engineers.",
		"Contributed to {projectTitle} by building assigned modules, participating in code reviews, and documenting implementation details for the team.",
		"Developed and maintained components of {projectTitle}, collaborating with teammates in daily stand-ups and delivering sprint commitments.",
		"Implemented core functionality for {projectTitle}, learning the domain quickly and taking growing ownership of individual features.",
	}

	// LeadRoleTemplates cover 6 to 10 years of experience.
	LeadRoleTemplates = []string{
		"Led the development of {projectTitle}, breaking down requirements into work items, reviewing the team's code, and owning technical decisions.",
		"Acted as technical lead on {projectTitle}, mentoring junior developers and coordinating delivery with product and QA stakeholders.",
		"Drove the design and implementation of {projectTitle}, balancing delivery pressure against long-term maintainability of the codebase.",
		"Owned key modules of {projectTitle} while guiding the team on architecture, coding standards, and release readiness.",
	}

	// ManagerRoleTemplates cover more than 10 years of experience.
	ManagerRoleTemplates = []string{
		"Managed the delivery of {projectTitle}, aligning scope and timelines with stakeholders, removing blockers, and reporting progress to leadership.",
		"Directed a cross-functional team building {projectTitle}, owning staffing, prioritization, and the overall technical roadmap.",
		"Oversaw {projectTitle} from initiation through rollout, accountable for budget, risk management, and stakeholder communication.",
		"Provided technical and people leadership for {projectTitle}, coaching engineers while keeping architecture decisions sound and delivery predictable.",
	}
)
