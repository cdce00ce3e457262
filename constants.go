package main

// Output formats for the list command
const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Session states
type sessionState int

const (
	browsing sessionState = iota
	confirming
)

func (ss sessionState) String() string {
	switch ss {
	case browsing:
		return "themes"
	case confirming:
		return "confirm"
	}

	return "unknown"
}
