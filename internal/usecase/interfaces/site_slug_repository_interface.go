package interfaces

import "context"

// ISiteSlugRepository answers the asynchronous site-slug uniqueness check
// offered on the registration form.
type ISiteSlugRepository interface {
	Exists(ctx context.Context, siteSlug string) (bool, error)
}
