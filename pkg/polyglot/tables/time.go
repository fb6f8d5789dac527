package tables

import "github.com/cognicore/polyglot/pkg/polyglot/action"

// Time-of-day values for action.SetTimeOfDay.
const (
	Midnight = 0
	AM       = 1
	Noon     = 2
	PM       = 3
	EndOfDay = 4
)

// ZoneUTC sets the time-zone offset to zero.
var ZoneUTC = action.New(action.SetZoneOffset, 0, []string{"GMT", "UT", "UTC", "WET"})

// Time holds the keywords for dates and times of day: parts of the day,
// relative days, "now", weekdays (value 0 = Sunday), months (1..12) and
// time-zone offsets in minutes east of UTC.
//
// Languages: German, English, French, Italian, Spanish, Dutch, Portuguese,
// not all complete.
var Time = action.Table{
	action.New(action.SetTimeOfDay, AM, []string{"AM", "vormittags", "matinée", "matinee",
		"a.m.", "antimeridiano", "del-mattino", "de-la-mañana", "de-la-manana"}),
	action.New(action.SetTimeOfDay, PM, []string{"PM", "nachmittags", "l'après-midi",
		"l'apres-midi", "del-pomeriggio", "de-la-tarde", "después-del-mediodía",
		"despues-del-mediodia"}),
	action.New(action.SetTimeOfDay, EndOfDay, []string{"Tagesende", "end-of-day", "fin-du-jour"}),
	action.New(action.SetTimeOfDay, Noon, []string{"Mittag", "noon", "midi", "mezzogiorno",
		"mediodía", "mediodia"}),
	action.New(action.SetTimeOfDay, Midnight, []string{"Mitternacht", "midnight", "minuit",
		"mezzanotte", "medianoche"}),

	action.New(action.SetDay, 0, []string{"heute", "today", "aujourd'hui", "oggigiorno",
		"hoy-día", "hoy-dia"}),
	action.New(action.SetDay, +1, []string{"morgen", "tomorrow", "demain", "domani",
		"mañana", "manana"}),
	action.New(action.SetDay, -1, []string{"gestern", "yesterday", "hier", "ieri", "ayer"}),
	action.New(action.SetDay, -2, []string{"vorgestern", "beforeyesterday", "avant-hier",
		"anteayer"}),
	action.New(action.SetDay, -3, []string{"vorvorgestern", "three-days-ago"}),

	action.New(action.SetDate, 0, []string{"jetzt", "now", "maintenant", "adesso", "ahora"}),

	action.New(action.SetWeekday, 0, []string{"Sonntag", "Sunday", "dimanche", "domenica",
		"domingo", "zondag"}),
	action.New(action.SetWeekday, 1, []string{"Montag", "Monday", "lundi", "lunedì", "lunes",
		"maandag", "Segunda-feira"}),
	action.New(action.SetWeekday, 2, []string{"Dienstag", "Tuesday", "mardi", "martedì",
		"martes", "dinsdag", "Terça-feira", "Terca-feira"}),
	action.New(action.SetWeekday, 3, []string{"Mittwoch", "Wednesday", "mercredi", "mercoledì",
		"mercoledi", "miércoles", "miercoles", "woensdag", "Quarta-feira"}),
	action.New(action.SetWeekday, 4, []string{"Donnerstag", "Thursday", "jeudi", "giovedì",
		"jueves", "donderdag", "Quinta-feira"}),
	action.New(action.SetWeekday, 5, []string{"Freitag", "Friday", "vendredi", "venerdì",
		"viernes", "vrijdag", "Sexta-feira"}),
	action.New(action.SetWeekday, 6, []string{"Samstag", "Saturday", "samedi", "sabato",
		"sábado", "sabado", "zaterdag"}),

	action.New(action.SetMonth, 1, []string{"Januar", "January", "janvier", "gennaio", "enero",
		"januari", "Janeiro"}),
	action.New(action.SetMonth, 2, []string{"Februar", "February", "février", "fevrier",
		"febbraio", "febrero", "februari", "Fevereiro"}),
	action.New(action.SetMonth, 3, []string{"März", "Maerz", "Mrz", "March", "mars", "marzo",
		"maart", "mrt", "Março", "Marco"}),
	action.New(action.SetMonth, 4, []string{"April", "avril", "april", "aprile", "abril"}),
	action.New(action.SetMonth, 5, []string{"Mai", "May", "mai", "maggio", "mayo", "mei", "Maio"}),
	action.New(action.SetMonth, 6, []string{"Juni", "June", "juin", "giugno", "junio", "Junho"}),
	action.New(action.SetMonth, 7, []string{"Juli", "July", "juillet", "luglio", "julio", "Julho"}),
	action.New(action.SetMonth, 8, []string{"August", "août", "aout", "agosto", "augustus"}),
	action.New(action.SetMonth, 9, []string{"September", "septembre", "settembre", "septiembre",
		"Setembro"}),
	action.New(action.SetMonth, 10, []string{"Oktober", "October", "octobre", "ottobre",
		"octubre", "Outubro"}),
	action.New(action.SetMonth, 11, []string{"November", "novembre", "noviembre", "Novembro"}),
	action.New(action.SetMonth, 12, []string{"Dezember", "December", "décembre", "decembre",
		"dicembre", "diciembre", "Dezembro"}),

	ZoneUTC,
	action.New(action.SetZoneOffset, 60, []string{"CET", "MEZ", "BST", "WAT", "IST", "WEST"}),
	action.New(action.SetZoneOffset, 2*60, []string{"MESZ", "CEST", "EET", "CAT", "SAST"}),
	action.New(action.SetZoneOffset, 3*60, []string{"MSK", "EEST", "CEMT", "EAT"}),
	action.New(action.SetZoneOffset, 3*60+30, []string{"IRST"}),
	action.New(action.SetZoneOffset, 4*60, []string{"MSD", "AZT"}),
	action.New(action.SetZoneOffset, -(2*60 + 30), []string{"NDT"}),
	action.New(action.SetZoneOffset, -(3*60 + 30), []string{"NST"}),
	// AST is also Arabia Standard Time (+03:00).
	action.New(action.SetZoneOffset, -4*60, []string{"AST", "EDT", "BOT", "CLT", "FKT", "GYT"}),
	action.New(action.SetZoneOffset, -5*60, []string{"EST", "CDT", "ACT", "COT", "PET"}),
	// CST is also China Standard Time.
	action.New(action.SetZoneOffset, -6*60, []string{"CST", "MDT", "GALT"}),
	action.New(action.SetZoneOffset, -7*60, []string{"MST", "PDT"}),
	action.New(action.SetZoneOffset, -8*60, []string{"PST", "AKDT"}),
	action.New(action.SetZoneOffset, -9*60, []string{"AKST"}),
	action.New(action.SetZoneOffset, -10*60, []string{"HST", "TAHT", "HAST"}),
}
