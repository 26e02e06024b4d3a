package agent

import "github.com/fwojciec/neoxbridge"

// demoBalances are shown for these addresses in demo mode when the
// explorer reports nothing.
var demoBalances = map[string]neoxbridge.Balance{
	"NVByrj4w4W6mtXj7Lhqu9tqgZ7ApQb4UG3": {NEO: "5.0", GAS: "10.25"},
	"NiEtVMWVYgpXrWkRTMwRaMJtJ41gD3912N": {NEO: "150.0", GAS: "85.42"},
	"NhGomKyZgSuYUGqrXHcpv1bNH9ntwvfm4c": {NEO: "25.0", GAS: "12.87"},
}

func demoBalance(addr string) (neoxbridge.Balance, bool) {
	b, ok := demoBalances[addr]
	if !ok {
		return neoxbridge.Balance{}, false
	}
	b.Address = addr
	return b, true
}
