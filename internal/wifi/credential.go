// Package wifi builds the WIFI: payload string that wireless-network QR codes carry.
//
// The payload is plaintext: anyone who can see the code can read the password.
// Phones typically require re-authentication before displaying a share code for
// exactly that reason.
package wifi

import (
	"errors"
	"strings"
)

// Auth identifies the authentication protocol of a wireless network.
type Auth int

const (
	// AuthWPA covers the WPA family, including WPA2-PSK. The common case.
	AuthWPA Auth = iota
	// AuthWEP is the legacy protocol family. Scanners still accept it.
	AuthWEP
	// AuthOpen means no password at all.
	AuthOpen
	// AuthWPA2EAP is enterprise (802.1X) authentication.
	AuthWPA2EAP
)

var (
	ErrEmptySSID       = errors.New("wifi: ssid must not be empty")
	ErrMissingPassword = errors.New("wifi: password required for secured network")
	ErrUnknownAuth     = errors.New("wifi: unknown authentication type")
)

// String returns the token used for the T: field of the payload.
func (a Auth) String() string {
	switch a {
	case AuthWPA:
		return "WPA"
	case AuthWEP:
		return "WEP"
	case AuthOpen:
		return "nopass"
	case AuthWPA2EAP:
		return "WPA2-EAP"
	}
	return "unknown"
}

// ParseAuth maps a textual auth name (as used by the CLI and the HTTP API)
// onto the enum. Matching is case-insensitive.
func ParseAuth(s string) (Auth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wpa", "wpa2":
		return AuthWPA, nil
	case "wep":
		return AuthWEP, nil
	case "open", "nopass", "none":
		return AuthOpen, nil
	case "wpa2-eap", "eap":
		return AuthWPA2EAP, nil
	}
	return 0, ErrUnknownAuth
}

// Credential holds everything needed to join a wireless network. Values are
// immutable after New; copy freely.
type Credential struct {
	ssid     string
	password string
	auth     Auth
	hidden   bool
}

// New validates the supplied fields and returns an immutable Credential.
// Open networks drop any supplied password; secured networks require one.
func New(ssid, password string, auth Auth, hidden bool) (Credential, error) {
	if ssid == "" {
		return Credential{}, ErrEmptySSID
	}
	switch auth {
	case AuthOpen:
		password = ""
	case AuthWPA, AuthWEP, AuthWPA2EAP:
		if password == "" {
			return Credential{}, ErrMissingPassword
		}
	default:
		return Credential{}, ErrUnknownAuth
	}
	return Credential{ssid: ssid, password: password, auth: auth, hidden: hidden}, nil
}

// SSID returns the network name.
func (c Credential) SSID() string { return c.ssid }

// Auth returns the authentication type.
func (c Credential) Auth() Auth { return c.auth }

// Hidden reports whether the network suppresses SSID broadcast.
func (c Credential) Hidden() bool { return c.hidden }

// escaper covers the characters the WIFI: format reserves. Single pass, so a
// backslash produced by one rule is never re-escaped by another.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`;`, `\;`,
	`,`, `\,`,
	`:`, `\:`,
)

// Encode renders the canonical payload:
//
//	WIFI:T:<auth>;S:<ssid>;P:<password>;H:true;;
//
// The P: field is omitted for open networks and H:true; only appears for
// hidden ones. A credential that passed New always encodes; output is
// byte-identical across calls.
func (c Credential) Encode() string {
	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(c.auth.String())
	b.WriteString(";S:")
	b.WriteString(escaper.Replace(c.ssid))
	b.WriteByte(';')
	if c.auth != AuthOpen {
		b.WriteString("P:")
		b.WriteString(escaper.Replace(c.password))
		b.WriteByte(';')
	}
	if c.hidden {
		b.WriteString("H:true;")
	}
	b.WriteByte(';')
	return b.String()
}
