package onegate

var (
	Units      = units
	ScriptHash = scriptHash
)
