package search

// Static vocabulary tables. All lookups are exact-match on lowercased
// tokens; there is no fuzzy/edit-distance matching.

// misspellings maps known-wrong spellings to their correction
var misspellings = map[string]string{
	"invioce":  "invoice",
	"invocie":  "invoice",
	"inovice":  "invoice",
	"cleint":   "client",
	"clinet":   "client",
	"custumer": "customer",
	"expence":  "expense",
	"exspense": "expense",
	"expanse":  "expense",
	"repot":    "report",
	"reprot":   "report",
	"recient":  "recent",
	"recet":    "recent",
	"summry":   "summary",
	"sumary":   "summary",
	"payed":    "paid",
	"recipt":   "receipt",
	"reciept":  "receipt",
	"ballance": "balance",
	"overdew":  "overdue",
}

// domainKeywords is the business vocabulary used for presence testing only
var domainKeywords = []string{
	"invoice",
	"bill",
	"billing",
	"client",
	"customer",
	"expense",
	"cost",
	"report",
	"analytics",
	"payment",
	"paid",
	"unpaid",
	"overdue",
	"tax",
	"quote",
	"estimate",
	"receipt",
	"vendor",
	"revenue",
	"balance",
}

// categoryKeywords defines the classifier's keyword pairs.
// Order matters: first match wins.
var categoryKeywords = []struct {
	Category Category
	Keywords []string
}{
	{CategoryInvoice, []string{"invoice", "bill"}},
	{CategoryClient, []string{"client", "customer"}},
	{CategoryExpense, []string{"expense", "cost"}},
	{CategoryReport, []string{"report", "analytics"}},
}
