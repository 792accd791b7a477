package edgar

// staticCIKs maps ~100 heavily-queried tickers to their CIKs so the common
// case skips the network directory lookup entirely. This is an
// optimization, not a correctness mechanism: any ticker registered in
// EDGAR still resolves through the directory.
var staticCIKs = map[string]string{
	// Mega-cap tech
	"AAPL":  "0000320193",
	"MSFT":  "0000789019",
	"GOOGL": "0001652044",
	"GOOG":  "0001652044",
	"AMZN":  "0001018724",
	"TSLA":  "0001318605",
	"META":  "0001326801",
	"FB":    "0001326801",
	"NVDA":  "0001045810",

	// Berkshire
	"BRK.A": "0001067983",
	"BRK.B": "0001067983",

	// Financials
	"JPM":  "0000019617",
	"BAC":  "0000070858",
	"WFC":  "0000072971",
	"GS":   "0000886982",
	"MS":   "0000895421",
	"C":    "0000831001",
	"AXP":  "0000004962",
	"BLK":  "0001364742",
	"SCHW": "0000316709",

	// Health care
	"JNJ":  "0000200406",
	"UNH":  "0000731766",
	"PFE":  "0000078003",
	"ABBV": "0001551152",
	"LLY":  "0000059478",
	"MRK":  "0000310158",
	"AMGN": "0000318154",
	"GILD": "0000882095",
	"BIIB": "0000875045",
	"TMO":  "0001009373",
	"ABT":  "0000001800",
	"CI":   "0000701221",
	"AEP":  "0000003670",

	// Consumer & retail
	"WMT": "0000104169",
	"PG":  "0000080424",
	"KO":  "0000021344",
	"PEP": "0000884996",
	"MCD": "0000063908",
	"LOW": "0000060667",
	"HD":  "0000354950",
	"DIS": "0001001039",
	"NKE": "0000320187",
	"CVS": "0001116132",
	"WBA": "0000012954",

	// Industrials & energy
	"XOM": "0000034088",
	"CVX": "0000093410",
	"COP": "0001163165",
	"MPC": "0000029099",
	"VLO": "0000050104",
	"PSX": "0001534701",
	"MMM": "0000066740",
	"BA":  "0000012927",
	"GE":  "0000040545",
	"LMT": "0000060086",
	"RTX": "0001282649",
	"CAT": "0000018230",

	// Payments
	"V":    "0001403161",
	"MA":   "0001141391",
	"PYPL": "0001633917",
	"SQ":   "0001512673",
	"COIN": "0001804992",
	"AMP":  "0000067689",

	// Semiconductors
	"AMD":  "0000002488",
	"INTC": "0000050863",
	"QCOM": "0000804707",
	"AVGO": "0001410291",
	"MU":   "0000723125",
	"LRCX": "0000707769",
	"ASML": "0001201488",
	"MRVL": "0001141046",

	// Software & services
	"ADBE": "0000796343",
	"CRM":  "0001108524",
	"NFLX": "0001065280",
	"ORCL": "0001585681",
	"IBM":  "0000051143",
	"INTU": "0000896878",
	"NOW":  "0001596440",
	"DDOG": "0001772409",
	"SNOW": "0001640147",
	"CRWD": "0001674925",
	"OKTA": "0001627475",

	// Communications
	"VZ":    "0000732712",
	"T":     "0000732717",
	"CMCSA": "0001166691",
	"CHTR":  "0001091667",
	"TMUS":  "0001632822",

	// Utilities
	"NEE": "0000753165",
	"DUK": "0000063951",
	"SO":  "0000092122",
	"EXC": "0000018171",
	"RUN": "0001518911",

	// Retail & gaming
	"GME": "0001326380",
	"AMC": "0001411579",

	// Other majors
	"TSM": "0001046181",
	"DE":  "0000315189",
	"FCX": "0000831259",
	"RIO": "0001022726",

	// ETFs with registered CIKs
	"SPY": "0001555280",
	"QQQ": "0001092865",
	"IWM": "0001074632",
}

// StaticCIK looks up a normalized ticker in the built-in table.
func StaticCIK(ticker string) (string, bool) {
	cik, ok := staticCIKs[ticker]
	return cik, ok
}
