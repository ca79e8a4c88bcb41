package main

import "github.com/okian/rinkside/internal/report"

func main() {
	report.Execute()
}
