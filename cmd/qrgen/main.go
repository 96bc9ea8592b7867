package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"wifiqr/internal/render"
	"wifiqr/internal/wifi"
)

func main() {
	ssid := flag.String("ssid", "", "Network name (required)")
	auth := flag.String("auth", "wpa", "Authentication type: wpa|wep|open|wpa2-eap")
	hidden := flag.Bool("hidden", false, "Network does not broadcast its SSID")
	level := flag.String("level", "medium", "Error-correction level: low|medium|quartile|high")
	size := flag.Int("size", 512, "Output edge length in pixels")
	format := flag.String("format", "png", "Output format: png|svg|txt")
	out := flag.String("out", "", "Output file (required for png; stdout otherwise)")
	password := flag.String("password", "", "Password (prompted when omitted)")
	flag.Parse()

	if *ssid == "" {
		fmt.Println("--ssid required")
		os.Exit(1)
	}

	authType, err := wifi.ParseAuth(*auth)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	pw := *password
	if pw == "" && authType != wifi.AuthOpen {
		pw, err = promptPassword()
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	}

	cred, err := wifi.New(*ssid, pw, authType, *hidden)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	ecLevel, err := render.ParseECLevel(*level)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	if err := emit(cred.Encode(), *format, *out, render.Options{Level: ecLevel, Size: *size}); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// promptPassword reads the password from the terminal without echo, so it
// never lands in shell history or process listings.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !terminal.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal; use --password")
	}
	fmt.Print("Password: ")
	pw, err := terminal.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

func emit(payload, format, out string, opts render.Options) error {
	var r render.QRRenderer
	switch format {
	case "txt":
		if out == "" {
			fmt.Println(payload)
			return nil
		}
		return os.WriteFile(out, []byte(payload+"\n"), 0600)
	case "png":
		if out == "" {
			return fmt.Errorf("--out required for png output")
		}
		png, err := r.PNG(payload, opts)
		if err != nil {
			return err
		}
		return os.WriteFile(out, png, 0644)
	case "svg":
		if out == "" {
			return r.SVG(payload, opts, os.Stdout)
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		return r.SVG(payload, opts, f)
	}
	return fmt.Errorf("unknown format: %s", format)
}
