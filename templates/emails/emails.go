// Package emails embeds the transactional email templates. Localized variants
// are named <template>_<lang>.html/.txt and fall back to <template>.html/.txt.
package emails

import "embed"

//go:embed *.html *.txt
var FS embed.FS
