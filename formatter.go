package agentev

// HTMLSource returns the source label for matches in a page's HTML.
func HTMLSource(pageURL string) string {
	return "HTML (" + pageURL + ")"
}

// ScriptSource returns the source label for matches in a script body.
func ScriptSource(scriptURL string) string {
	return "JS (" + scriptURL + ")"
}
