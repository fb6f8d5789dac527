package tables

import "github.com/cognicore/polyglot/pkg/polyglot/action"

// Rate values for action.SetRate.
const (
	Secondly = 1
	Minutely = 2
	Hourly   = 3
	Daily    = 4
	Weekly   = 5
)

// Rates names repetition periods. English and German are complete, the
// other languages partly.
var Rates = action.Table{
	action.New(action.SetRate, Secondly, []string{"sekündlich", "secondly"}),
	action.New(action.SetRate, Minutely, []string{"minütlich", "minutely"}),
	action.New(action.SetRate, Hourly, []string{"stündlich", "hourly", "horaire", "ogni-ora",
		"por-hora", "cada-hora"}),
	action.New(action.SetRate, Daily, []string{"täglich", "daily", "dayly", "quotidien",
		"giornaliero", "por-día", "por-dia"}),
	action.New(action.SetRate, Weekly, []string{"wöchentlich", "weekly", "hebdomadaire",
		"settimanale", "semanal"}),
}
