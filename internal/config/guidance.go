package config

// DashboardURL адрес, где создаются учетные данные приложения Spotify
const DashboardURL = "https://developer.spotify.com/dashboard"

// CredentialGuidance возвращает строки подсказки для пользователя без учетных данных
func CredentialGuidance() []string {
	return []string{
		"Please fix this by either:",
		"  1) Creating a .env file next to the binary with:",
		"      " + EnvClientID + "=your_client_id",
		"      " + EnvClientSecret + "=your_client_secret",
		"  2) Or exporting them in your shell:",
		"      export " + EnvClientID + "=your_client_id",
		"      export " + EnvClientSecret + "=your_client_secret",
		"      ($env:" + EnvClientID + "='your_client_id' in PowerShell)",
		"Visit " + DashboardURL + " to get them.",
	}
}
