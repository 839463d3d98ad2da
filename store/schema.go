package store

// Bucket names. Each document kind gets two key families: a primary
// bucket keyed by id and a slug index bucket keyed by slug whose value
// is the id.
const (
	BucketPosts      = "posts"         // {id} -> Post
	BucketPostSlugs  = "posts_by_slug" // {slug} -> id
	BucketCategories = "categories"    // {id} -> Category
	BucketCatSlugs   = "categories_by_slug"
	BucketPages      = "pages" // {id} -> Page
	BucketPageSlugs  = "pages_by_slug"

	// Global metadata
	BucketMeta = "meta"

	// Meta keys
	KeySchemaVersion = "schema_version"
)

// SchemaVersion is bumped when the on-disk layout changes.
const SchemaVersion = 1

// AllBuckets returns all bucket names for initialization.
func AllBuckets() []string {
	return []string{
		BucketPosts,
		BucketPostSlugs,
		BucketCategories,
		BucketCatSlugs,
		BucketPages,
		BucketPageSlugs,
		BucketMeta,
	}
}
