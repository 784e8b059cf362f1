package analyzer

// Keyword lexicons backing the five dimension scorers. Matching is
// case-insensitive substring containment, each entry counted at most
// once. That means "for" also hits inside "before", an accepted
// imprecision: the scorers are deliberately cheap.

var vagueWords = []string{"thing", "stuff", "something", "anything", "maybe", "perhaps", "might", "kinda", "sorta"}

var clearActionWords = []string{"create", "write", "analyze", "explain", "describe", "list", "compare", "summarize"}

var formatWords = []string{"json", "csv", "markdown", "html", "pdf", "bullet points", "numbered list", "table", "report", "essay"}

var domainWords = []string{"business", "technical", "academic", "marketing", "sales", "finance", "education", "health"}

var vagueRequests = []string{"help me", "can you", "please do", "make it good", "do something", "fix this"}

var contextWords = []string{"background", "context", "situation", "purpose", "goal", "because", "since", "for", "i need", "i want"}

var personalWords = []string{"i am", "my", "our", "we are", "company", "project", "team"}

var formatInstructions = []string{"format as", "write in", "use style", "include", "structure", "organize", "make it"}

var lengthSpecs = []string{"words", "characters", "pages", "paragraphs", "sentences", "bullet points", "brief", "detailed", "long", "short"}

var styleSpecs = []string{"tone", "style", "formal", "casual", "professional", "friendly", "technical", "simple", "advanced"}

var audienceSpecs = []string{"for", "audience", "beginner", "expert", "student", "client", "manager"}

var actionWords = []string{"create", "write", "analyze", "design", "develop", "build", "generate", "produce", "make", "explain", "describe"}

var outcomeWords = []string{"result", "output", "deliverable", "final", "end goal", "objective", "want", "need"}

var intentWords = []string{"show", "tell", "find", "solve", "fix", "improve", "optimize", "compare"}

var unclearWords = []string{"somehow", "whatever", "anything", "something", "help", "please"}
