package driven

// URLOpener opens a URL in the user's browser.
type URLOpener interface {
	OpenURL(url string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}
