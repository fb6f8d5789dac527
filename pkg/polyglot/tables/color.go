package tables

import "github.com/cognicore/polyglot/pkg/polyglot/action"

// Colors maps colour names to 0xRRGGBB values.
//
// "bl" and "gr" come first in their entries: keywords are scanned in order,
// so an exact short keyword must precede the longer ones it abbreviates. Green is the RGB green
// 0x00FF00; HTML's "green" (0x008000) is "darkgreen" here.
var Colors = action.Table{
	action.New(action.SetColor, 0xFF0000, []string{"red", "rot", "rt", "rouge"}),
	action.New(action.SetColor, 0x00FF00, []string{"green", "grün", "gruen", "gn", "vert", "lime"}),
	action.New(action.SetColor, 0x0000FF, []string{"bl", "blue", "blau", "bleu"}),
	action.New(action.SetColor, 0x000000, []string{"black", "schwarz", "sw", "noir", "bk"}),
	action.New(action.SetColor, 0xFFFFFF, []string{"white", "weiß", "weiss", "ws", "blanche", "wt"}),
	action.New(action.SetColor, 0xFFFF00, []string{"yellow", "ge", "gelb", "jaune"}),
	action.New(action.SetColor, 0x808080, []string{"gr", "gray", "grau", "gris", "grey"}),
	action.New(action.SetColor, 0xC0C0C0, []string{"silver", "silbern", "argent"}),
	action.New(action.SetColor, 0xFF00FF, []string{"magenta", "fuchsia", "lavendel", "purpurrot"}),
	action.New(action.SetColor, 0x00FFFF, []string{"aqua", "cyan", "blaugrün"}),
	action.New(action.SetColor, 0x808000, []string{"olive", "olivgrün"}),
	action.New(action.SetColor, 0x800000, []string{"maroon", "weinrot", "kastanienbraun"}),
	action.New(action.SetColor, 0x800080, []string{"purple", "violet", "flieder"}),
	action.New(action.SetColor, 0x008080, []string{"teal", "mintgrün"}),
	action.New(action.SetColor, 0x008000, []string{"dunkelgrün", "dgn", "darkgreen", "dark_green"}),
	action.New(action.SetColor, 0x000080, []string{"navy", "dunkelblau", "dbl"}),
	action.New(action.SetColor, 0x000080, []string{"nightblue", "nachtblau", "nbl"}),
	action.New(action.SetColor, 0xFFC0CB, []string{"rosa", "pink", "rosarot", "rose"}),
	action.New(action.SetColor, 0x4B0082, []string{"indigo"}),
}
