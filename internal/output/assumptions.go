package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Expected returns: conservative 5%, moderate 7%, aggressive 9% annually",
	"Market multipliers: strong x1.3, average x1.0, below average x0.7",
	"Savings target: 25x the annual expense gap (4% withdrawal rule)",
	"Guaranteed income valued at 25x its annual amount",
	"Projection runs 30 years past retirement; savings earn half the return once retired",
	"Amounts are nominal; inflation and taxes are not modeled",
}
