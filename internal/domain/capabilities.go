package domain

// Capabilities records what a probed test executable advertises in its help
// text. A failed probe leaves all fields false ("assume minimal").
type Capabilities struct {
	StructuredOutput bool // --output_format option is present
	JUnitLogFormat   bool // --log_format accepts JUNIT
	ListContent      bool // --list_content option is present
}
