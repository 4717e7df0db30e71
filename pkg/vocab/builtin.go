package vocab

// builtinSets returns a fresh copy of the shipped vocabulary.
func builtinSets() map[Category][]string {
	return map[Category][]string{
		Emotions: {
			"feel", "felt", "feeling", "emotional", "overwhelmed", "anxious", "stressed", "worried",
			"sad", "angry", "frustrated", "hopeful", "grateful", "calm", "peaceful", "excited",
			"nervous", "relieved", "disappointed", "proud", "joyful", "content", "satisfied",
			"fulfilled", "empty", "numb", "hurt", "pain", "aching", "tender", "vulnerable",
			"raw", "sensitive", "fragile", "strong", "powerful", "confident", "insecure",
			"jealous", "envious", "guilty", "ashamed", "embarrassed", "humiliated", "rejected",
			"abandoned", "lonely", "isolated", "connected", "loved", "cherished", "valued",
			"appreciated", "supported", "understood", "heard", "seen", "validated", "accepted",
			"welcomed", "embraced",
		},
		Struggles: {
			"struggle", "struggling", "difficult", "challenging", "hard", "tough", "overwhelming",
			"stuck", "lost", "confused", "uncertain", "afraid", "scared", "troubled", "bothered",
			"stressed", "pressured", "burdened", "weighed", "heavy", "exhausted", "drained",
			"depleted", "burnt", "tired", "fatigued", "worn", "beaten", "defeated", "hopeless",
			"helpless", "powerless", "weak", "fragile", "broken", "shattered", "damaged",
			"wounded", "injured", "traumatized", "triggered", "activated", "dysregulated",
			"imbalanced", "unstable", "chaotic", "messy", "complicated", "complex", "tangled",
			"knotted", "twisted", "distorted", "warped", "skewed", "biased", "prejudiced",
			"judgmental", "critical", "harsh", "severe",
		},
		Needs: {
			"need", "want", "require", "seek", "hope", "wish", "desire", "long", "crave",
			"yearn", "miss", "lack", "deserve", "demand", "request", "ask", "plead", "beg",
			"pray", "dream", "fantasize", "imagine", "envision", "picture", "see", "visualize",
			"anticipate", "expect", "await", "look", "search", "hunt", "pursue", "chase",
			"follow", "track", "trace", "find", "discover", "uncover", "reveal", "expose",
			"show", "demonstrate", "prove", "establish", "create", "build", "construct",
			"develop", "generate", "produce", "make", "craft", "design", "plan", "organize",
			"arrange", "structure",
		},
		Support: {
			"help", "support", "guidance", "comfort", "understanding", "compassion", "empathy",
			"care", "love", "acceptance", "validation", "encouragement", "assistance", "aid",
			"relief", "rescue", "salvation", "healing", "recovery", "restoration", "renewal",
			"revival", "resurrection", "transformation", "change", "growth", "development",
			"progress", "advancement", "improvement", "enhancement", "enrichment", "nourishment",
			"nurturing", "cultivation", "fostering", "promoting", "encouraging", "inspiring",
			"motivating", "empowering", "strengthening", "fortifying", "reinforcing", "backing",
			"endorsing", "advocating", "championing", "defending", "protecting", "safeguarding",
			"securing", "ensuring", "guaranteeing", "promising", "assuring", "confirming",
			"affirming", "validating",
		},
		Actions: {
			"try", "attempt", "work", "practice", "learn", "grow", "change", "improve", "develop",
			"progress", "move", "step", "start", "continue", "stop", "begin", "initiate", "commence",
			"launch", "embark", "undertake", "pursue", "engage", "participate", "involve", "contribute",
			"collaborate", "cooperate", "coordinate", "organize", "plan", "prepare", "arrange",
			"schedule", "prioritize", "focus", "concentrate", "dedicate", "commit", "devote", "invest",
			"spend", "allocate", "distribute", "share", "give", "offer", "provide", "supply", "deliver",
			"present", "show", "demonstrate", "exhibit", "display", "express", "communicate", "convey",
			"transmit", "send", "receive", "accept", "embrace", "welcome", "invite", "include",
			"incorporate", "integrate", "combine", "merge", "blend", "mix", "unite", "join", "connect",
		},
		Thoughts: {
			"think", "believe", "wonder", "question", "doubt", "know", "understand", "realize",
			"recognize", "remember", "forget", "imagine", "consider", "contemplate", "ponder",
			"reflect", "meditate", "analyze", "examine", "study", "investigate", "explore",
			"discover", "uncover", "reveal", "expose", "identify", "detect", "notice", "observe",
			"perceive", "sense", "feel", "experience", "encounter", "meet", "face", "confront",
			"challenge", "query", "inquire", "ask", "speculate", "hypothesize",
			"theorize", "assume", "presume", "suppose", "guess", "estimate", "calculate", "measure",
			"evaluate", "assess", "judge", "critique", "review", "inspect", "check",
			"verify", "confirm", "validate", "prove", "demonstrate", "show", "illustrate", "explain",
			"clarify", "illuminate", "enlighten",
		},
		Relationships: {
			"family", "friends", "partner", "therapist", "people", "others", "community", "connections",
			"relationships", "loved", "alone", "parents", "children", "siblings", "relatives", "colleagues",
			"coworkers", "teammates", "classmates", "neighbors", "acquaintances", "strangers", "enemies",
			"rivals", "competitors", "allies", "supporters", "advocates", "mentors", "guides", "teachers",
			"students", "learners", "followers", "leaders", "bosses", "employees", "customers", "clients",
			"patients", "doctors", "nurses", "counselors", "coaches", "advisors", "consultants", "experts",
			"professionals", "specialists", "authorities", "figures", "role-models", "heroes", "inspirations",
			"influences", "impacts", "effects", "consequences", "results", "outcomes", "achievements",
			"successes", "failures", "mistakes", "errors", "lessons", "experiences", "memories", "moments",
			"times", "periods", "phases", "stages", "chapters",
		},
		Time: {
			"today", "yesterday", "tomorrow", "recently", "lately", "often", "sometimes", "always",
			"never", "usually", "currently", "now", "then", "soon", "later", "before", "after",
			"during", "while", "when", "whenever", "until", "since", "from", "through", "throughout",
			"within", "beyond", "past", "present", "future", "permanent", "temporary", "brief", "short",
			"long", "extended", "prolonged", "continuous", "constant", "regular", "irregular", "frequent",
			"infrequent", "rare", "occasional", "periodic", "cyclical", "seasonal", "annual", "monthly",
			"weekly", "daily", "hourly", "momentary", "instant", "immediate", "delayed", "postponed",
			"scheduled", "planned", "unexpected", "sudden", "gradual", "slow", "fast", "quick", "rapid",
			"swift", "hasty", "rushed", "calm", "patient", "steady", "consistent", "persistent",
		},
		Connectors: {
			"and", "but", "or", "so", "because", "although", "however", "therefore", "meanwhile",
			"also", "too", "even", "still", "yet", "then", "thus", "hence", "consequently",
			"accordingly", "furthermore", "moreover", "additionally", "besides", "likewise",
			"similarly", "conversely", "alternatively", "otherwise", "instead", "rather",
			"nonetheless", "nevertheless", "regardless", "despite", "though", "whereas", "while",
			"since", "unless", "until", "before", "after", "when", "whenever", "where", "wherever",
			"why", "how", "what", "which", "who", "whom", "whose", "that", "this", "these", "those",
			"such", "same", "different", "other", "another", "each", "every", "all", "some", "any",
			"no", "none", "both", "either", "neither", "first", "second", "third", "last", "final",
			"initial", "previous", "next", "following", "subsequent", "prior", "former", "latter",
		},
		GrowthWords: {
			// emotional intelligence and regulation
			"mindfulness", "awareness", "boundaries", "patience", "compassion", "forgiveness", "acceptance",
			"resilience", "regulation", "self-control", "discipline", "moderation", "temperance", "restraint",
			"containment", "management", "mastery", "expertise", "skill", "ability", "capacity", "capability",
			"competence", "proficiency", "talent", "gift", "strength", "power", "force", "energy", "vitality",
			"vigor", "intensity", "passion", "enthusiasm", "excitement", "motivation", "inspiration", "aspiration",
			"ambition", "drive", "determination", "persistence", "perseverance", "tenacity", "grit", "resolve",
			"commitment", "dedication", "devotion",
			// communication and relationships
			"listening", "vulnerability", "intimacy", "trust", "empathy", "connection", "honesty", "respect",
			"openness", "transparency", "authenticity", "sincerity", "genuineness", "truthfulness", "reliability",
			"dependability", "consistency", "stability", "security", "safety", "protection", "shelter", "refuge",
			"sanctuary", "haven", "comfort", "solace", "peace", "tranquility", "serenity", "calmness", "stillness",
			"quietude", "silence", "space", "freedom", "liberation", "independence", "autonomy", "self-determination",
			"choice", "option", "alternative", "possibility", "opportunity", "potential", "promise", "hope", "faith",
			"belief", "confidence",
			// personal development
			"courage", "self-worth", "purpose", "meaning", "clarity", "wisdom",
			"insight", "understanding", "comprehension", "knowledge", "education", "learning", "growth",
			"development", "evolution", "transformation", "metamorphosis", "change", "transition", "shift",
			"movement", "progress", "advancement", "improvement", "enhancement", "enrichment", "expansion",
			"extension", "amplification", "magnification", "intensification", "deepening", "broadening",
			"widening", "stretching", "reaching", "striving", "achieving", "accomplishing", "succeeding",
			"winning", "triumph", "victory", "conquest", "excellence", "perfection",
			// coping and healing
			"therapy", "meditation", "journaling", "breathing", "grounding", "processing", "release", "recovery",
			"healing", "restoration", "renewal", "regeneration", "rejuvenation", "revitalization", "rehabilitation",
			"reconstruction", "rebuilding", "repair", "mending", "fixing", "solving", "resolving", "addressing",
			"tackling", "handling", "managing", "coping", "dealing", "facing", "confronting", "meeting",
			"encountering", "experiencing", "living", "existing", "being", "becoming", "emerging", "arising",
			"appearing", "manifesting", "expressing", "showing", "revealing", "displaying", "demonstrating",
			"proving", "establishing", "creating", "generating", "producing",
		},
		Skills: {
			// regulation
			"breathwork", "box-breathing", "grounding", "body-scan", "pausing", "self-soothing",
			"naming-feelings", "noticing-triggers", "sitting-with-discomfort", "riding-the-wave",
			// thinking
			"reframing", "perspective-taking", "self-reflection", "journaling", "problem-solving",
			"decision-making", "prioritizing", "planning", "goal-setting", "letting-go",
			// relating
			"active-listening", "boundary-setting", "saying-no", "asking-for-help", "apologizing",
			"repairing", "assertiveness", "negotiating", "expressing-needs", "giving-feedback",
			"receiving-feedback", "conflict-resolution", "empathizing", "validating", "reaching-out",
			// caring for yourself
			"self-compassion", "self-care", "resting", "sleeping-well", "moving-your-body", "stretching",
			"walking", "nourishing", "hydrating", "unplugging", "slowing-down", "celebrating-wins",
			"gratitude", "savoring", "laughing", "creating", "playing", "singing", "dancing",
			// persisting
			"patience", "consistency", "habit-building", "time-management", "focusing", "delegating",
			"trying-again", "starting-small", "accepting-imperfection", "forgiving-yourself",
		},
	}
}
