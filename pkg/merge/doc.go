// Package merge reconciles the mappings returned by independent sources
// into descriptor fields.
//
// A Policy is data: an ordered list of rules, one per field, each holding
// a Resolver. Resolvers are built from candidates, (source, label) pairs
// tried in priority order:
//
//	merge.Rule{
//	    Field: descriptor.FieldSerialNumber,
//	    Resolve: merge.First(
//	        merge.C("dmidecode", "Serial Number"),
//	        merge.C("dmidecode", "serial"),
//	    ),
//	}
//
// First picks the first candidate whose source produced a result and whose
// label is present, even when the value is empty. Composite resolvers
// (BIOS, Pair, Features, Width, Bytes, Edition) derive a field from several
// labels. A field nobody resolves keeps its empty default.
package merge
