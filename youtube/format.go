package youtube

// Format describes one downloadable rendition of a video, as reported by the
// extraction tool. Zero values stand in for fields the tool did not report.
// JSON keys follow the chat-bot wire shape.
type Format struct {
	ID       string `json:"format_id"`
	Ext      string `json:"ext"`
	Filesize int64  `json:"filesize"`
	Note     string `json:"format_note"`
	Label    string `json:"format"`
	Link     string `json:"yturl"`
}
