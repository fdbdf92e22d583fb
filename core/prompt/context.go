package prompt

import (
	"regexp"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// htmlTagPattern is a cheap heuristic for markup: an opening tag with an
// alphabetic name. Plain-text catalogs with stray angle brackets stay
// untouched.
var htmlTagPattern = regexp.MustCompile(`<[a-zA-Z][^>]*>`)

// NormalizeContext prepares a catalog context for prompting. HTML product
// feeds are converted to markdown, which models read far more reliably than
// raw markup and which costs a fraction of the tokens. Non-HTML input is
// returned unchanged, as is anything the converter cannot handle.
func NormalizeContext(catalogContext string) string {
	if !htmlTagPattern.MatchString(catalogContext) {
		return catalogContext
	}
	markdown, err := htmltomarkdown.ConvertString(catalogContext)
	if err != nil {
		return catalogContext
	}
	return markdown
}
