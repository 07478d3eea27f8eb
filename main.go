package main

import "github.com/raviraj-mashruwala/calorie-tracker-v1/cmd/caltrack"

func main() {
	caltrack.Execute()
}
