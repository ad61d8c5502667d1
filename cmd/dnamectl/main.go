// Command dnamectl validates, orders and indexes DNS domain names.
//
// Usage:
//
//	dnamectl check 03777777076578616d706c6503636f6d00
//	dnamectl sort --file names.txt
//	dnamectl labels www.example.com.
//	dnamectl index add www.example.com. --note web
//	dnamectl index next www.example.com.
//	dnamectl index add --zone example.com.zone
//	dnamectl zone --names example.com.zone
//	dnamectl serve --port 8053
//
// Configuration is read from --config or DNAMECTL_CONFIG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
