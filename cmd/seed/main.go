// Command seed writes a starter persons.yaml catalog so the service has a
// deck to browse out of the box.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"biodeck/internal/person"
)

type group struct {
	category string
	persons  []person.Person
}

var starter = []group{
	{"entrepreneur", []person.Person{
		{Name: "Phil Knight", BirthYear: 1938, Book: "Shoe Dog", Company: "Nike"},
		{Name: "Richard Branson", BirthYear: 1950, Book: "Losing My Virginity", Company: "Virgin Group"},
		{Name: "Arnold Schwarzenegger", BirthYear: 1947, Book: "Total Recall", Field: "Bodybuilding, film, politics"},
	}},
	{"scientist", []person.Person{
		{Name: "Richard Feynman", BirthYear: 1918, Book: "Surely You're Joking, Mr. Feynman!", Field: "Physics"},
		{Name: "Jane Goodall", BirthYear: 1934, Book: "Reason for Hope", Field: "Primatology"},
	}},
	{"athlete", []person.Person{
		{Name: "Andre Agassi", BirthYear: 1970, Book: "Open", Field: "Tennis"},
		{Name: "Mike Tyson", BirthYear: 1966, Book: "Undisputed Truth", Field: "Boxing"},
	}},
	{"artist", []person.Person{
		{Name: "Maya Angelou", BirthYear: 1928, Book: "I Know Why the Caged Bird Sings", Country: "USA"},
		{Name: "Patti Smith", BirthYear: 1946, Book: "Just Kids", Field: "Music"},
	}},
	{"leader", []person.Person{
		{Name: "Nelson Mandela", BirthYear: 1918, Book: "Long Walk to Freedom", Country: "South Africa"},
		{Name: "Ulysses Grant", BirthYear: 1822, Book: "Personal Memoirs", Country: "USA"},
	}},
}

func main() {
	out := flag.String("o", "persons.yaml", "output path for the catalog")
	force := flag.Bool("force", false, "overwrite an existing catalog")
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			log.Fatalf("%s already exists; use -force to overwrite", *out)
		}
	}

	raw, err := renderCatalog(starter)
	if err != nil {
		log.Fatalf("render catalog: %v", err)
	}
	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		log.Fatalf("write catalog: %v", err)
	}

	total := 0
	for _, g := range starter {
		total += len(g.persons)
	}
	log.Printf("Wrote %d persons in %d categories to %s", total, len(starter), *out)
}

// renderCatalog emits the category-keyed document with categories in the
// listed order, which a plain map marshal would not preserve.
func renderCatalog(groups []group) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, g := range groups {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: g.category}
		val := &yaml.Node{}
		if err := val.Encode(g.persons); err != nil {
			return nil, fmt.Errorf("encode %s: %w", g.category, err)
		}
		root.Content = append(root.Content, key, val)
	}
	return yaml.Marshal(root)
}
