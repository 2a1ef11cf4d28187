package openai

const descriptionSystemPrompt = "You are an expert eCommerce copywriter and SEO specialist. Generate high-converting, SEO-optimized product descriptions that drive sales and improve search rankings."

const descriptionPromptTemplate = `Generate an SEO-optimized product description for an eCommerce store with the following requirements:

Product Name: %s
Category: %s
Key Features: %s
Target Keywords: %s
Tone: %s
Length: %s

Requirements:
1. Create a compelling, %s product description
2. Naturally incorporate the target keywords for SEO optimization
3. Highlight the key features and benefits
4. Use persuasive language that encourages purchase
5. Structure the content for readability
6. Ensure the description is %s long

Please respond with a JSON object containing:
- content: the generated description
- seoScore: a score from 1-10 based on SEO optimization
- wordCount: number of words in the description
- keywordDensity: percentage of target keywords in the content
- suggestedKeywords: array of 3-5 additional relevant keywords

Make sure the description is unique, engaging, and optimized for search engines.`

const keywordsSystemPrompt = "You are an SEO keyword research expert. Provide relevant, high-traffic keywords that will help products rank better in search engines."

const keywordsPromptTemplate = `Suggest 10 relevant SEO keywords for a product named "%s" in the %s category.
Focus on keywords that potential customers would search for when looking for this type of product.
Include a mix of short-tail and long-tail keywords.

Respond with a JSON object containing:
- keywords: array of 10 relevant keywords`

const seoScoreSystemPrompt = "You are an SEO analysis expert. Evaluate product descriptions for search engine optimization effectiveness."

const seoScorePromptTemplate = `Analyze the following product description for SEO optimization and provide a score from 1-10:

Description: "%s"
Target Keywords: %s

Evaluate based on:
- Keyword usage and density
- Content quality and readability
- Length and structure
- Persuasive language
- Search engine optimization best practices

Respond with a JSON object containing:
- score: number from 1-10
- feedback: brief explanation of the score`

// Word-count targets per requested length
var lengthMap = map[string]string{
	"short":  "50-100 words",
	"medium": "100-200 words",
	"long":   "200-300 words",
}
