// Package fixture loads the static data files that tests compare the application against.
package fixture
