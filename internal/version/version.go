package version

// AppVersion is the released trayline version. Overridable at build time via
// -ldflags "-X trayline/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
