package collect

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	azureSSHRe = regexp.MustCompile(`^(?:git@)?ssh\.dev\.azure\.com:v3/([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)
	hostSSHRe  = regexp.MustCompile(`^git@(github\.com|gitlab\.com|bitbucket\.org):([^/]+)/(.+?)(?:\.git)?$`)
)

// NormalizeRemoteURL rewrites SSH-form remote URLs to the provider's canonical
// HTTPS browsing URL and strips any trailing .git. URLs that match no known
// SSH pattern pass through with only the .git suffix removed, so the function
// is idempotent.
func NormalizeRemoteURL(url string) string {
	url = strings.TrimSpace(url)
	if m := azureSSHRe.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf("https://dev.azure.com/%s/%s/_git/%s", m[1], m[2], m[3])
	}
	if m := hostSSHRe.FindStringSubmatch(url); m != nil {
		return fmt.Sprintf("https://%s/%s/%s", m[1], m[2], m[3])
	}
	return strings.TrimSuffix(url, ".git")
}
