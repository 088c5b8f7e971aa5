package llm

import (
	"fmt"
	"strings"
)

// analysisSystemPrompt instructs the model to return document facts as
// a single JSON object matching the Analysis shape.
const analysisSystemPrompt = `You are a document analysis expert. Extract key information from documents and return structured data in JSON format.

For each document, extract the following information:
- document_type: Type of document (invoice, letter, report, contract, etc.)
- document_date: The date the document itself was written or sent (format: YYYY-MM-DD), as opposed to dates mentioned within the content
- summary: Brief 1-2 sentence summary of the document
- organizations: List of company/organization names mentioned
- people: List of people's names mentioned
- dates: List of important dates mentioned in the content (format: YYYY-MM-DD), excluding the document date
- locations: List of addresses, cities, places mentioned
- referenced_documents: List of other documents referenced
- key_information: List of important facts, numbers, or details
- financial_amounts: List of monetary amounts with context

Return only valid JSON. Use empty arrays [] for categories with no entries.`

// summarySystemPrompt instructs the model to produce one final summary,
// whether the input is raw text or several partial summaries.
const summarySystemPrompt = `You are a document summarization expert. Produce one coherent, comprehensive summary of the material you are given.

Guidelines:
1. Remove redundant information that appears more than once
2. Preserve all unique and important details
3. Prioritize the most important information first
4. Keep the final summary concise but comprehensive (ideally 2-4 sentences)
5. Maintain factual accuracy and add nothing not present in the source

Return only the final summary text, no additional formatting or explanation.`

// analysisPrompt formats document content for an Analyze call.
func analysisPrompt(content string) string {
	return fmt.Sprintf("Analyze this document:\n\nContent:\n%s\n\nPlease extract the structured information as specified.", content)
}

// AggregationPrompt formats partial summaries of one document for a
// Summarize call that combines them. documentName is optional context.
func AggregationPrompt(summaries []string, documentName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please combine these %d partial summaries", len(summaries))
	if documentName != "" {
		fmt.Fprintf(&b, " for document %q", documentName)
	}
	b.WriteString(" into one coherent summary:\n")
	for i, summary := range summaries {
		fmt.Fprintf(&b, "\nSummary %d:\n%s\n", i+1, summary)
	}
	b.WriteString("\nFinal combined summary:")
	return b.String()
}
