package catalog

// ProjectCategory pairs a category's keyword list with its description
// templates. Templates mention generic subjects ("this project", "the
// application", "the system", "the solution") that the generator swaps for
// the title's detected subject when one is found.
type ProjectCategory struct {
	Name      string
	Keywords  []string
	Templates []string
}

// DefaultCategory names the catch-all category for titles nothing else
// matches.
const DefaultCategory = "default"

// ProjectCategories in declaration order; scoring ties resolve to the
// earlier entry.
var ProjectCategories = []ProjectCategory{
	{
		Name:     "api",
		Keywords: []string{"api", "rest", "graphql", "endpoint", "microservice", "gateway", "webhook"},
		Templates: []string{
			"Designed and delivered this project as a set of well-documented REST endpoints with versioned contracts, request validation, and consistent error semantics across the service surface.",
			"Built the application as a scalable API platform, exposing core business capabilities through secured endpoints backed by automated contract tests and performance benchmarks.",
			"Implemented the system end to end, from API schema design through deployment, achieving predictable latency under production load and clean separation between transport and domain logic.",
			"Developed the solution as a service-oriented API layer that consolidated fragmented integrations into a single documented interface consumed by multiple internal teams.",
		},
	},
	{
		Name:     "web",
		Keywords: []string{"web", "website", "portal", "dashboard", "frontend", "ui", "cms"},
		Templates: []string{
			"Developed this project as a responsive web experience with accessible components, fast initial load, and a maintainable styling architecture.",
			"Built the application as a modern single-page experience, delivering interactive dashboards and forms with client-side validation and graceful error states.",
			"Implemented the system as a content-driven web portal, enabling non-technical users to publish and manage pages without engineering involvement.",
			"Created the solution as a performant web interface backed by reusable UI components, cutting feature build time for subsequent pages.",
		},
	},
	{
		Name:     "mobile",
		Keywords: []string{"mobile", "android", "ios", "app", "flutter", "tablet"},
		Templates: []string{
			"Developed this project as a cross-platform mobile experience with offline support, push notifications, and a release pipeline covering both stores.",
			"Built the application for mobile-first usage, optimizing cold-start time and battery impact while keeping feature parity across Android and iOS.",
			"Implemented the system as a native-quality mobile client, integrating device capabilities such as camera and location with careful permission handling.",
			"Created the solution as a mobile app with a streamlined onboarding flow, increasing activation among first-time users.",
		},
	},
	{
		Name:     "data",
		Keywords: []string{"data", "etl", "pipeline", "analytics", "warehouse", "report", "bi"},
		Templates: []string{
			"Designed this project as a reliable data pipeline, moving raw source records through validated transformation stages into analytics-ready tables.",
			"Built the application to ingest, clean, and aggregate high-volume datasets, with lineage tracking and alerting on freshness violations.",
			"Implemented the system as a reporting and analytics layer, turning operational data into scheduled dashboards consumed by business stakeholders.",
			"Developed the solution as a warehouse-centric data platform with incremental loads, schema evolution handling, and documented data contracts.",
		},
	},
	{
		Name:     "cloud",
		Keywords: []string{"cloud", "aws", "azure", "gcp", "serverless", "kubernetes", "infrastructure"},
		Templates: []string{
			"Architected this project on managed cloud services, using infrastructure as code for reproducible environments and least-privilege access policies.",
			"Built the application as a cloud-native workload with autoscaling, health-checked deployments, and cost monitoring from day one.",
			"Implemented the system as a serverless architecture, eliminating idle capacity while keeping p99 latency within agreed targets.",
			"Migrated and operated the solution across cloud environments, hardening networking, secrets handling, and disaster-recovery runbooks.",
		},
	},
	{
		Name:     "automation",
		Keywords: []string{"automation", "automated", "workflow", "scheduler", "bot", "script", "cron"},
		Templates: []string{
			"Developed this project to automate a previously manual workflow, removing repetitive handoffs and cutting turnaround from days to minutes.",
			"Built the application as a scheduled automation service with retries, idempotent steps, and an audit trail of every run.",
			"Implemented the system as a rules-driven workflow engine, letting operations staff adjust behavior without code changes.",
			"Created the solution as a suite of automation scripts and jobs that reclaimed significant engineering hours each week.",
		},
	},
	{
		Name:     "security",
		Keywords: []string{"security", "auth", "authentication", "encryption", "compliance", "audit", "vault"},
		Templates: []string{
			"Implemented this project with security as the core requirement, covering authentication, authorization, and encrypted storage of sensitive records.",
			"Built the application to meet compliance controls, adding audit logging, access reviews, and secrets rotation across environments.",
			"Hardened the system against common attack classes, introducing input validation, rate limiting, and dependency scanning into the delivery pipeline.",
			"Developed the solution as a centralized authentication layer, consolidating identity handling and reducing credential sprawl.",
		},
	},
	{
		Name:     "ai",
		Keywords: []string{"ai", "ml", "model", "prediction", "recommendation", "chatbot", "nlp"},
		Templates: []string{
			"Developed this project around a trained model pipeline, covering feature preparation, evaluation, and monitored inference in production.",
			"Built the application to serve model predictions behind a stable interface, with fallbacks for low-confidence results.",
			"Implemented the system as a recommendation capability, improving relevance of surfaced items against a measured baseline.",
			"Created the solution as an applied AI feature, pairing heuristic guardrails with learned components for predictable behavior.",
		},
	},
	{
		Name:     "migration",
		Keywords: []string{"migration", "migrate", "modernization", "upgrade", "replatform", "conversion", "legacy"},
		Templates: []string{
			"Led this project to migrate a legacy workload onto a supported stack with zero data loss and a reversible cutover plan.",
			"Built the application's migration tooling, validating record counts and checksums at every stage of the move.",
			"Implemented the system modernization incrementally, strangling legacy modules behind stable interfaces until full retirement.",
			"Executed the solution's replatforming, retiring end-of-life infrastructure while preserving existing integrations.",
		},
	},
	{
		Name:     "integration",
		Keywords: []string{"integration", "sync", "connector", "middleware", "bridge", "interface", "messaging"},
		Templates: []string{
			"Developed this project as an integration layer connecting previously siloed systems through well-defined message contracts.",
			"Built the application as a set of connectors with retry, dead-lettering, and reconciliation to keep both sides consistent.",
			"Implemented the system as middleware translating between internal and partner formats without leaking either schema.",
			"Created the solution to synchronize records across platforms in near real time, with conflict handling and replay support.",
		},
	},
	{
		Name:     DefaultCategory,
		Keywords: nil,
		Templates: []string{
			"Contributed to this project across design, implementation, and rollout, delivering agreed scope on schedule with documented handover.",
			"Developed the application collaboratively with stakeholders, iterating on requirements and shipping improvements in regular increments.",
			"Implemented the system with attention to maintainability, adding tests and documentation that eased later feature work.",
			"Delivered the solution end to end, coordinating dependencies and resolving blockers to keep the effort on track.",
		},
	},
}

// MobileAppBonus nudges the mobile category ahead of web when the title
// mentions an "app" and web would otherwise win.
const MobileAppBonus = 2
