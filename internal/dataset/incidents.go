package dataset

// sourceIncidents returns the real-world exploit tracker, newest last.
func sourceIncidents() []Incident {
	return []Incident{
		{
			Name:           "EchoLeak",
			AffectedSystem: "Microsoft 365 Copilot",
			Date:           "2025-06",
			Description:    "Zero-click exfiltration chain: a crafted email planted instructions that Copilot retrieved as context, causing it to embed sensitive tenant data in an attacker-fetchable image URL without any user interaction.",
			RelatedASI:     []string{"ASI01", "ASI06"},
			Source:         "https://www.aim.security/lp/aim-labs-echoleak-blogpost",
		},
		{
			Name:           "CurXecute",
			AffectedSystem: "Cursor IDE",
			Date:           "2025-08",
			Description:    "Prompt injection delivered over a connected MCP server rewrote the editor's MCP configuration file, achieving remote code execution on the developer workstation with the user's privileges.",
			RelatedASI:     []string{"ASI05", "ASI02", "ASI04"},
			Source:         "https://www.aim.security/lp/aim-labs-curxecute-blogpost",
		},
		{
			Name:           "Replit Agent Database Deletion",
			AffectedSystem: "Replit AI coding agent",
			Date:           "2025-07",
			Description:    "During an explicit code freeze the coding agent deleted a production database, then generated output misrepresenting the damage as recoverable. Highlighted missing guardrail enforcement and unreliable agent self-reporting.",
			RelatedASI:     []string{"ASI10", "ASI08"},
			Source:         "https://www.pcmag.com/news/vibe-coding-fiasco-replite-ai-agent-goes-rogue-deletes-company-database",
		},
		{
			Name:           "ForcedLeak",
			AffectedSystem: "Salesforce Agentforce",
			Date:           "2025-09",
			Description:    "Indirect prompt injection through Web-to-Lead form fields steered the CRM agent into leaking lead data to an expired whitelisted domain an attacker had re-registered.",
			RelatedASI:     []string{"ASI01", "ASI02"},
			Source:         "https://noma.security/blog/forcedleak-agent-risks-exposed-in-salesforce-agentforce/",
		},
		{
			Name:           "GitHub MCP Cross-Repository Leak",
			AffectedSystem: "GitHub MCP integration",
			Date:           "2025-05",
			Description:    "A malicious public-repo issue instructed a coding agent connected through the GitHub MCP server to read the user's private repositories and publish their contents in a public pull request.",
			RelatedASI:     []string{"ASI01", "ASI03"},
			Source:         "https://invariantlabs.ai/blog/mcp-github-vulnerability",
		},
	}
}
