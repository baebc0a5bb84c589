package shell

import (
	"encoding/json"
	"strings"
	"text/template"
)

// Names of the native functions the bridge script calls.
const (
	BindNewWindow = "__pwaNewWindow"
	BindConsole   = "__pwaConsole"
)

// BridgeOptions selects the behaviors compiled into the bridge script.
type BridgeOptions struct {
	UserAgent     string
	ConsoleBridge bool
	Chrome        ChromePlan
}

var bridgeTemplate = template.Must(template.New("bridge").Parse(`(function () {
  if (window.__pwaShell) { return; }
  window.__pwaShell = true;
{{- if .UserAgent}}
  try {
    Object.defineProperty(navigator, "userAgent", { get: function () { return {{.UserAgent}}; } });
  } catch (e) {}
{{- end}}
{{- if .ConsoleBridge}}
  var originalLog = console.log;
  console.log = function () {
    originalLog.apply(console, arguments);
    try {
      window.{{.BindConsole}}(Array.prototype.map.call(arguments, String).join(" "));
    } catch (e) {}
  };
{{- end}}
  var openWindow = function (href) {
    var target = String(href);
    try { target = new URL(target, location.href).href; } catch (e) {}
    window.{{.BindNewWindow}}(target);
  };
  window.open = function (href) {
    if (href) { openWindow(href); }
    return null;
  };
  document.addEventListener("click", function (ev) {
    var el = ev.target;
    var link = el && el.closest ? el.closest('a[target="_blank"]') : null;
    if (!link || !link.href) { return; }
    ev.preventDefault();
    openWindow(link.href);
  }, true);
{{- if .BackButton}}
  document.addEventListener("DOMContentLoaded", function () {
    var back = document.createElement("button");
    back.textContent = "BACK";
    back.style.cssText = {{.BackStyle}};
    back.addEventListener("click", function () { history.back(); });
    document.body.appendChild(back);
  });
{{- end}}
}());
`))

type bridgeData struct {
	UserAgent     string
	ConsoleBridge bool
	BackButton    bool
	BackStyle     string
	BindNewWindow string
	BindConsole   string
}

// BridgeScript returns the JavaScript injected at document start of every
// page the window loads. Full-screen mode and the theme tint are applied by
// the native window, not by the script.
func BridgeScript(opts BridgeOptions) string {
	data := bridgeData{
		ConsoleBridge: opts.ConsoleBridge,
		BackButton:    opts.Chrome.BackButton,
		BindNewWindow: BindNewWindow,
		BindConsole:   BindConsole,
	}
	if opts.UserAgent != "" {
		data.UserAgent = jsString(opts.UserAgent)
	}
	if opts.Chrome.BackButton {
		data.BackStyle = jsString(backButtonStyle(opts.Chrome.Tint))
	}

	var b strings.Builder
	if err := bridgeTemplate.Execute(&b, data); err != nil {
		// The template is static and the data is plain strings.
		panic(err)
	}
	return b.String()
}

func backButtonStyle(tint *RGBA) string {
	bg, fg := "rgba(255, 255, 255, 0.85)", "#000000"
	if tint != nil {
		bg = tint.CSS()
		if tint.IsDark() {
			fg = "#ffffff"
		}
	}
	return "position:fixed;top:3px;right:2px;z-index:2147483647;border:none;" +
		"padding:2px 8px;font:12px -apple-system,sans-serif;cursor:pointer;" +
		"background:" + bg + ";color:" + fg + ";"
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
