package config

// Keys exposes the setting names so tests can isolate the environment.
var Keys = keys

var ParseDuration = parseDuration
