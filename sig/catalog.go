package sig

import (
	"sort"
	"sync"

	"github.com/storacha/go-sigcodec/hash"
	"github.com/storacha/go-sigcodec/sig/format"
)

// Catalog enumerates the composed names the factory supports, expanding the
// hash-parameterized RSA families with the digest names reported by its
// source. The expansion runs once, on first use, and is safe to share across
// goroutines.
type Catalog struct {
	src   hash.Source
	once  sync.Once
	names []string
}

func NewCatalog(src hash.Source) *Catalog {
	return &Catalog{src: src}
}

// Names returns the sorted composed names in the catalog. The returned slice
// is a copy, so callers cannot corrupt the catalog by mutating it.
func (c *Catalog) Names() []string {
	c.once.Do(func() {
		names := []string{
			NameDSS + "/" + format.RawName,
			NameDSS + "/" + format.X509Name,
		}
		for _, md := range c.src.Names() {
			pkcs := NameRSAPKCS1v15 + "-" + md
			names = append(names, pkcs+"/"+format.RawName, pkcs+"/"+format.X509Name)
			// RSA-PSS signatures have no X.509 form.
			names = append(names, NameRSAPSS+"-"+md+"/"+format.RawName)
		}
		sort.Strings(names)
		c.names = names
	})

	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Has reports whether the composed name is in the catalog.
func (c *Catalog) Has(name string) bool {
	names := c.Names()
	i := sort.SearchStrings(names, name)
	return i < len(names) && names[i] == name
}

var defaultCatalog = NewCatalog(hash.Default())

// Names returns the composed names supported by the default catalog.
func Names() []string {
	return defaultCatalog.Names()
}
