package summarize

// Instruction is the fixed task description sent ahead of every article.
const Instruction = "You are an expert news summarizer. Your task is to take the following news article and provide a concise, easy-to-understand summary. The summary must be between 5 and 6 lines long."

// ArticleDelimiter separates the instruction from the article text.
const ArticleDelimiter = "\n\nHere is the article:\n\n"

// BuildPrompt returns the full model prompt for text.
// The article text is included verbatim with no truncation.
func BuildPrompt(text string) string {
	return Instruction + ArticleDelimiter + text
}
