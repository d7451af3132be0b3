package main

import "feedback/web"

func main() {
	web.RunApp()
}
