// Package callsite captures call stacks and attributes log entries to the
// code that produced them.
//
// A Stack is stored location-first: frame i holds the file and line of a
// call together with the name of the function called there. Attribution
// therefore performs two lookups. The location frame is the nearest frame
// with file and line information; the identity frame is the one right after
// it and names the function that contains the location.
//
// Paths are shortened to their last two segments so that entries read the
// same on every machine:
//
//	/var/www/site/wp-content/plugins/myplugin/src/File.php -> .../src/File.php
package callsite
