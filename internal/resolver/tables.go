package resolver

// entry is one name→symbol mapping. The tables are slices, not maps: the
// substring pass returns the first match in table order, so insertion
// order is part of the resolution contract.
type entry struct {
	name   string
	symbol string
}

// indianSuffixes are the exchange suffixes probed for bare Indian tickers.
var indianSuffixes = []string{".NS", ".BO"}

// indianCompanies maps well-known Indian company names to NSE symbols.
var indianCompanies = []entry{
	// Technology
	{"tcs", "TCS.NS"},
	{"tata consultancy services", "TCS.NS"},
	{"infosys", "INFY.NS"},
	{"wipro", "WIPRO.NS"},
	{"hcl technologies", "HCLTECH.NS"},
	{"tech mahindra", "TECHM.NS"},

	// Banking & Finance
	{"hdfc bank", "HDFCBANK.NS"},
	{"icici bank", "ICICIBANK.NS"},
	{"state bank of india", "SBIN.NS"},
	{"sbi", "SBIN.NS"},
	{"axis bank", "AXISBANK.NS"},
	{"kotak mahindra bank", "KOTAKBANK.NS"},
	{"bajaj finance", "BAJFINANCE.NS"},
	{"hdfc", "HDFC.NS"},

	// Automotive
	{"tata motors", "TATAMOTORS.NS"},
	{"maruti suzuki", "MARUTI.NS"},
	{"mahindra", "M&M.NS"},
	{"bajaj auto", "BAJAJ-AUTO.NS"},
	{"hero motocorp", "HEROMOTOCO.NS"},
	{"tvs motor", "TVSMOTOR.NS"},

	// Pharmaceuticals
	{"sun pharma", "SUNPHARMA.NS"},
	{"dr reddy", "DRREDDY.NS"},
	{"cipla", "CIPLA.NS"},
	{"lupin", "LUPIN.NS"},
	{"aurobindo pharma", "AUROPHARMA.NS"},
	{"divi's laboratories", "DIVISLAB.NS"},

	// Oil & Gas
	{"reliance", "RELIANCE.NS"},
	{"reliance industries", "RELIANCE.NS"},
	{"oil and natural gas corporation", "ONGC.NS"},
	{"ongc", "ONGC.NS"},
	{"indian oil", "IOC.NS"},
	{"bharat petroleum", "BPCL.NS"},
	{"hindustan petroleum", "HINDPETRO.NS"},

	// Metals & Mining
	{"tata steel", "TATASTEEL.NS"},
	{"jsw steel", "JSWSTEEL.NS"},
	{"hindalco", "HINDALCO.NS"},
	{"vedanta", "VEDL.NS"},
	{"coal india", "COALINDIA.NS"},
	{"nmdc", "NMDC.NS"},

	// Consumer Goods
	{"hindustan unilever", "HINDUNILVR.NS"},
	{"hul", "HINDUNILVR.NS"},
	{"itc", "ITC.NS"},
	{"nestle india", "NESTLEIND.NS"},
	{"britannia", "BRITANNIA.NS"},
	{"godrej consumer", "GODREJCP.NS"},

	// Telecom
	{"bharti airtel", "BHARTIARTL.NS"},
	{"airtel", "BHARTIARTL.NS"},
	{"vodafone idea", "IDEA.NS"},
	{"jio", "RJIO.NS"},

	// Power & Infrastructure
	{"ntpc", "NTPC.NS"},
	{"power grid", "POWERGRID.NS"},
	{"larsen toubro", "LT.NS"},
	{"l&t", "LT.NS"},
	{"ultratech cement", "ULTRACEMCO.NS"},
	{"grasim", "GRASIM.NS"},

	// Others
	{"adani enterprises", "ADANIENT.NS"},
	{"asian paints", "ASIANPAINT.NS"},
	{"bajaj finserv", "BAJAJFINSV.NS"},
	{"titan", "TITAN.NS"},
}

// usCompanies maps well-known US company names to symbols.
var usCompanies = []entry{
	{"apple", "AAPL"},
	{"microsoft", "MSFT"},
	{"google", "GOOGL"},
	{"alphabet", "GOOGL"},
	{"amazon", "AMZN"},
	{"tesla", "TSLA"},
	{"meta", "META"},
	{"facebook", "META"},
	{"netflix", "NFLX"},
	{"nvidia", "NVDA"},
	{"intel", "INTC"},
	{"amd", "AMD"},
	{"oracle", "ORCL"},
	{"salesforce", "CRM"},
	{"adobe", "ADBE"},
	{"paypal", "PYPL"},
	{"visa", "V"},
	{"mastercard", "MA"},
	{"jpmorgan", "JPM"},
	{"jp morgan", "JPM"},
	{"bank of america", "BAC"},
	{"wells fargo", "WFC"},
	{"goldman sachs", "GS"},
	{"morgan stanley", "MS"},
	{"berkshire hathaway", "BRK-B"},
	{"johnson & johnson", "JNJ"},
	{"pfizer", "PFE"},
	{"coca cola", "KO"},
	{"pepsi", "PEP"},
	{"walmart", "WMT"},
	{"home depot", "HD"},
	{"disney", "DIS"},
	{"boeing", "BA"},
	{"caterpillar", "CAT"},
	{"exxon mobil", "XOM"},
	{"chevron", "CVX"},
}
