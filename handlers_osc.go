package nast

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// dispatchStr routes a completed string-type sequence (OSC ']', DCS 'P',
// PM '^', APC '_', SOS 'X') to its handler. data is the payload runes
// collected between the introducer and the ST/BEL terminator.
func (t *Terminal) dispatchStr(kind byte, data []rune) {
	switch kind {
	case ']':
		t.dispatchOSC(string(data))
	case 'P':
		t.dispatchDCS(data)
	case '^':
		t.pm.Receive([]byte(string(data)))
	case '_':
		t.apc.Receive([]byte(string(data)))
	case 'X':
		t.sos.Receive([]byte(string(data)))
	}
}

// dispatchOSC handles "Ps;Pt" Operating System Commands: 0/1/2 (title),
// 4 (palette set), 8 (hyperlink), 10/11/12 (dynamic fg/bg/cursor color),
// 52 (clipboard), 110/111/112 (reset dynamic colors).
func (t *Terminal) dispatchOSC(s string) {
	semi := strings.IndexByte(s, ';')
	var code string
	var rest string
	if semi < 0 {
		code, rest = s, ""
	} else {
		code, rest = s[:semi], s[semi+1:]
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return
	}
	switch n {
	case 0, 1, 2:
		t.title = rest
		t.titleProv.SetTitle(rest)
	case 4:
		// Ps;c;spec(;c;spec...): palette redefinition, ignored beyond
		// accepting the syntax - a headless core has no renderer palette
		// to mutate in place.
	case 8:
		t.dispatchHyperlink(rest)
	case 10, 11, 12:
		// Dynamic fg/bg/cursor color query/set ("?" queries, else a color
		// spec): queries are answered with the corresponding default so a
		// client probing colors gets a deterministic reply.
		if rest == "?" {
			c := DefaultForeground
			switch n {
			case 11:
				c = DefaultBackground
			case 12:
				c = DefaultCursorColor
			}
			r, g, b := c.Channels()
			t.reply(fmt.Sprintf("\x1b]%s;rgb:%02x%02x/%02x%02x/%02x%02x\x07", code, r, r, g, g, b, b))
		}
	case 22:
		t.pushTitleStack()
	case 23:
		t.popTitleStack()
	case 52:
		t.dispatchClipboard(rest)
	case 104, 110, 111, 112:
		// Reset palette / dynamic colors: no-op, same reasoning as case 4.
	}
}

func (t *Terminal) pushTitleStack() {
	t.titleStack = append(t.titleStack, t.title)
	t.titleProv.PushTitle()
}

func (t *Terminal) popTitleStack() {
	if len(t.titleStack) == 0 {
		return
	}
	t.title = t.titleStack[len(t.titleStack)-1]
	t.titleStack = t.titleStack[:len(t.titleStack)-1]
	t.titleProv.PopTitle()
}

// dispatchHyperlink handles OSC 8 ; params ; uri. An empty uri closes the
// currently open hyperlink.
func (t *Terminal) dispatchHyperlink(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	uri := ""
	if len(parts) == 2 {
		uri = parts[1]
	}
	t.hyperlinkURI = uri
	if uri == "" {
		t.hyperlinkID = ""
	}
}

// dispatchClipboard handles OSC 52 ; Pc ; Pd. Pd "?" is a read request
// answered via response; otherwise Pd is base64 payload to store.
func (t *Terminal) dispatchClipboard(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	if len(parts) != 2 {
		return
	}
	selector := byte('c')
	if len(parts[0]) > 0 {
		selector = parts[0][0]
	}
	if parts[1] == "?" {
		data := t.clipboard.Read(selector)
		enc := base64.StdEncoding.EncodeToString([]byte(data))
		t.reply("\x1b]52;" + string(selector) + ";" + enc + "\x07")
		return
	}
	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return
	}
	t.clipboard.Write(selector, raw)
}

// dispatchDCS handles Device Control String payloads. Sixel graphics data
// (introduced by a leading 'q' after any numeric parameters) is explicitly
// out of scope: recognized and swallowed without error, not decoded.
func (t *Terminal) dispatchDCS(data []rune) {
	for _, r := range data {
		if r == 'q' {
			return // sixel body: discarded whole, non-goal
		}
		if r < '0' || r > '9' {
			if r != ';' {
				break
			}
		}
	}
	t.log.Debug().Int("len", len(data)).Msg("unrecognized DCS sequence")
}
