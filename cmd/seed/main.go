// Command seed generates a YAML dataset of sample Paris startups for local
// development. The API starts with an empty directory; point
// STARTUP_SEED_FILE at the generated file to have something on the map.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type seedOptions struct {
	outPath      string
	startupCount int
	randomSeed   int64
}

type startupDocument struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	Website      string         `yaml:"website"`
	Size         string         `yaml:"size"`
	Logo         string         `yaml:"logo,omitempty"`
	Founded      int            `yaml:"founded"`
	Longitude    float64        `yaml:"longitude"`
	Latitude     float64        `yaml:"latitude"`
	Address      string         `yaml:"address"`
	Industry     []string       `yaml:"industry"`
	IsHiring     bool           `yaml:"isHiring"`
	ProvidesVisa bool           `yaml:"providesVisa"`
	Roles        []roleDocument `yaml:"roles,omitempty"`
}

type roleDocument struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Department  string `yaml:"department"`
	Type        string `yaml:"type"`
	Remote      bool   `yaml:"remote"`
	Description string `yaml:"description"`
	ApplyURL    string `yaml:"applyUrl"`
	PostedAt    string `yaml:"postedAt"`
}

type seedFile struct {
	Startups []startupDocument `yaml:"startups"`
}

var (
	namePrefixes = []string{"Lumi", "Carto", "Nova", "Helio", "Ver", "Pixel", "Quanta", "Agora", "Mistral", "Rive"}
	nameSuffixes = []string{"metrics", "lane", "ly", "scope", "flow", "forge", "mind", "grid", "labs", "deck"}

	industryPool = []string{"AI", "Fintech", "Biotech", "Mobility", "SaaS", "Hardware", "E-commerce", "Climate", "Foodtech"}

	neighborhoods = []struct {
		name     string
		lng, lat float64
	}{
		{"Le Marais", 2.3590, 48.8590},
		{"Sentier", 2.3470, 48.8680},
		{"Bastille", 2.3690, 48.8530},
		{"Montparnasse", 2.3260, 48.8420},
		{"Belleville", 2.3770, 48.8720},
		{"La Défense", 2.2380, 48.8920},
		{"Station F / 13e", 2.3710, 48.8340},
	}

	roleTitles = map[string][]string{
		"Engineering": {"Backend Engineer", "Frontend Engineer", "Data Engineer", "SRE"},
		"Product":     {"Product Manager", "Product Designer"},
		"Growth":      {"Growth Marketer", "Sales Development Representative"},
	}

	roleTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

	companySizes = []string{"1-10", "11-50", "51-200", "201-500"}
)

func main() {
	opts := parseFlags()

	rng := rand.New(rand.NewSource(opts.randomSeed))

	file := seedFile{Startups: make([]startupDocument, 0, opts.startupCount)}
	for i := 0; i < opts.startupCount; i++ {
		file.Startups = append(file.Startups, buildStartup(rng))
	}

	raw, err := yaml.Marshal(file)
	if err != nil {
		log.Fatalf("marshal seed file: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.outPath), 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}
	if err := os.WriteFile(opts.outPath, raw, 0o644); err != nil {
		log.Fatalf("write seed file: %v", err)
	}

	log.Printf("wrote %d startups to %s", opts.startupCount, opts.outPath)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.StringVar(&opts.outPath, "out", "data/startups.yaml", "output file path")
	flag.IntVar(&opts.startupCount, "count", 12, "number of startups to generate")
	flag.Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()
	return opts
}

func buildStartup(rng *rand.Rand) startupDocument {
	name := namePrefixes[rng.Intn(len(namePrefixes))] + nameSuffixes[rng.Intn(len(nameSuffixes))]
	spot := neighborhoods[rng.Intn(len(neighborhoods))]

	industries := pickIndustries(rng)
	roles := buildRoles(rng)

	return startupDocument{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  fmt.Sprintf("%s builds %s products for the %s market.", name, strings.ToLower(industries[0]), spot.name),
		Website:      fmt.Sprintf("https://%s.example.com", strings.ToLower(name)),
		Size:         companySizes[rng.Intn(len(companySizes))],
		Founded:      2012 + rng.Intn(13),
		Longitude:    jitter(rng, spot.lng),
		Latitude:     jitter(rng, spot.lat),
		Address:      fmt.Sprintf("%d Rue de %s, Paris", 1+rng.Intn(120), spot.name),
		Industry:     industries,
		IsHiring:     len(roles) > 0 || rng.Intn(4) == 0,
		ProvidesVisa: rng.Intn(3) == 0,
		Roles:        roles,
	}
}

func pickIndustries(rng *rand.Rand) []string {
	count := 1 + rng.Intn(2)
	picked := make([]string, 0, count)
	seen := make(map[string]struct{})
	for len(picked) < count {
		tag := industryPool[rng.Intn(len(industryPool))]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		picked = append(picked, tag)
	}
	return picked
}

func buildRoles(rng *rand.Rand) []roleDocument {
	count := rng.Intn(4)
	roles := make([]roleDocument, 0, count)
	departments := make([]string, 0, len(roleTitles))
	for dept := range roleTitles {
		departments = append(departments, dept)
	}

	for i := 0; i < count; i++ {
		dept := departments[rng.Intn(len(departments))]
		titles := roleTitles[dept]
		title := titles[rng.Intn(len(titles))]
		postedAt := time.Now().UTC().AddDate(0, 0, -rng.Intn(60))

		roles = append(roles, roleDocument{
			ID:          uuid.NewString(),
			Title:       title,
			Department:  dept,
			Type:        roleTypes[rng.Intn(len(roleTypes))],
			Remote:      rng.Intn(2) == 0,
			Description: fmt.Sprintf("We are looking for a %s to join our %s team.", title, strings.ToLower(dept)),
			ApplyURL:    "https://jobs.example.com/" + uuid.NewString(),
			PostedAt:    postedAt.Format(time.RFC3339),
		})
	}
	return roles
}

// jitter spreads points a few hundred meters around the neighborhood center.
func jitter(rng *rand.Rand, v float64) float64 {
	return v + (rng.Float64()-0.5)*0.01
}
