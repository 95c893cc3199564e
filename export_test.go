package main

var (
	NewApp    = newApp
	NewLogger = newLogger
	TailMean  = tailMean
	Run       = run
)
