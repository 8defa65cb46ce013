package ghsearch

import (
	"context"

	"github.com/kailas-cloud/ghsearch/internal/domain/qualifier"
	"github.com/kailas-cloud/ghsearch/internal/domain/query"
	"github.com/kailas-cloud/ghsearch/internal/domain/resource"
)

// CodeSearch builds a search over file contents.
// Obtain one from Client.Code; the zero value is not usable.
type CodeSearch struct {
	keywordPart[*CodeSearch]
	qualifierPart[*CodeSearch]
	sortPart[*CodeSearch]
	client *Client
}

var _ QueryBuilder = (*CodeSearch)(nil)

func newCodeSearch(c *Client) *CodeSearch {
	b := &CodeSearch{client: c}
	b.keywordPart.self = b
	b.qualifierPart.self = b
	b.sortPart.self = b
	return b
}

// Endpoint implements QueryBuilder.
func (b *CodeSearch) Endpoint() string { return resource.Code.Endpoint() }

// BuildQuery implements QueryBuilder.
func (b *CodeSearch) BuildQuery() (string, error) {
	if err := b.checkDropped(b.client.strict); err != nil {
		return "", err
	}
	return query.Standard(&b.keywords, &b.qualifiers, &b.sortOrder).Encode(), nil
}

// Search performs the request.
func (b *CodeSearch) Search(ctx context.Context, opts ...SearchOption) (*Response, error) {
	return b.client.execute(ctx, resource.Code, b, b.newDrops(), opts)
}

// InFiles matches keywords in file contents.
func (b *CodeSearch) InFiles() *CodeSearch { return b.is("in", "file") }

// InPaths matches keywords in file paths.
func (b *CodeSearch) InPaths() *CodeSearch { return b.is("in", "path") }

// InFilesAndPaths matches keywords in contents or paths.
func (b *CodeSearch) InFilesAndPaths() *CodeSearch { return b.is("in", "file,path") }

// ByUser limits to repositories owned by a user.
func (b *CodeSearch) ByUser(username string) *CodeSearch { return b.is("user", username) }

// ByOrganization limits to repositories owned by an organization.
func (b *CodeSearch) ByOrganization(org string) *CodeSearch { return b.is("org", org) }

// ByRepository limits to a single repository.
func (b *CodeSearch) ByRepository(owner, repo string) *CodeSearch {
	return b.is("repo", qualifier.Path(owner, repo))
}

// ByPath limits to files under a directory.
func (b *CodeSearch) ByPath(path string) *CodeSearch { return b.is("path", path) }

// ByLanguage limits to a language.
func (b *CodeSearch) ByLanguage(language string) *CodeSearch { return b.is("language", language) }

// BySize filters on file size in bytes.
func (b *CodeSearch) BySize(size int, op Operator) *CodeSearch { return b.count("size", size, op) }

// BySizeRange filters on a file size interval in bytes.
func (b *CodeSearch) BySizeRange(first, second int) *CodeSearch {
	return b.countRange("size", first, second)
}

// ByFilename matches file names.
func (b *CodeSearch) ByFilename(filename string) *CodeSearch { return b.is("filename", filename) }

// ByExtension matches file extensions.
func (b *CodeSearch) ByExtension(extension string) *CodeSearch {
	return b.is("extension", extension)
}
