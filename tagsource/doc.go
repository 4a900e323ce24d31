// Package tagsource provides kubetags.TagSource implementations that list tag
// names from container registries or plain text.
//
// Every source is lazy: pages are fetched while the returned sequence is
// ranged over, and breaking out of the loop stops further requests. On
// failure a source yields ("", err) once and stops.
package tagsource
