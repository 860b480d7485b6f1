package units

// Unit describes one unit of measure. Conversion goes through the
// dimension's base unit: base = value*Factor + Offset. Offsets are only
// used for temperatures.
type Unit struct {
	Name    string   // canonical name used in output
	Aliases []string // alternate spellings accepted in input
	System  System   // SystemNone = shared by both systems
	Dim     Dimension
	Factor  float64
	Offset  float64
}

// builtinUnits is the bundled unit table. Base units: millilitre (volume),
// gram (mass), second (time), degree Celsius (temperature).
var builtinUnits = []Unit{
	// Volume, metric.
	{Name: "ml", Aliases: []string{"milliliter", "milliliters", "millilitre", "millilitres", "mL"}, System: SystemMetric, Dim: Volume, Factor: 1},
	{Name: "l", Aliases: []string{"liter", "liters", "litre", "litres", "L"}, System: SystemMetric, Dim: Volume, Factor: 1000},

	// Volume, imperial (US customary).
	{Name: "tsp", Aliases: []string{"teaspoon", "teaspoons", "tsps"}, System: SystemImperial, Dim: Volume, Factor: 4.92892},
	{Name: "tbsp", Aliases: []string{"tablespoon", "tablespoons", "tbsps"}, System: SystemImperial, Dim: Volume, Factor: 14.7868},
	{Name: "fl oz", Aliases: []string{"fluid ounce", "fluid ounces", "floz"}, System: SystemImperial, Dim: Volume, Factor: 29.5735},
	{Name: "cup", Aliases: []string{"cups"}, System: SystemImperial, Dim: Volume, Factor: 236.588},
	{Name: "pint", Aliases: []string{"pints", "pt"}, System: SystemImperial, Dim: Volume, Factor: 473.176},
	{Name: "quart", Aliases: []string{"quarts", "qt"}, System: SystemImperial, Dim: Volume, Factor: 946.353},
	{Name: "gallon", Aliases: []string{"gallons", "gal"}, System: SystemImperial, Dim: Volume, Factor: 3785.41},

	// Mass.
	{Name: "g", Aliases: []string{"gram", "grams", "gramme", "grammes"}, System: SystemMetric, Dim: Mass, Factor: 1},
	{Name: "kg", Aliases: []string{"kilogram", "kilograms", "kilo", "kilos"}, System: SystemMetric, Dim: Mass, Factor: 1000},
	{Name: "oz", Aliases: []string{"ounce", "ounces"}, System: SystemImperial, Dim: Mass, Factor: 28.3495},
	{Name: "lb", Aliases: []string{"pound", "pounds", "lbs"}, System: SystemImperial, Dim: Mass, Factor: 453.592},

	// Time, shared by both systems.
	{Name: "seconds", Aliases: []string{"second", "sec", "secs", "s"}, Dim: Time, Factor: 1},
	{Name: "minutes", Aliases: []string{"minute", "min", "mins", "m"}, Dim: Time, Factor: 60},
	{Name: "hours", Aliases: []string{"hour", "hr", "hrs", "h"}, Dim: Time, Factor: 3600},

	// Temperature. Base is Celsius; Fahrenheit is affine.
	{Name: "°C", Aliases: []string{"C", "celsius"}, System: SystemMetric, Dim: Temperature, Factor: 1},
	{Name: "°F", Aliases: []string{"F", "fahrenheit"}, System: SystemImperial, Dim: Temperature, Factor: 5.0 / 9.0, Offset: -160.0 / 9.0},
}
