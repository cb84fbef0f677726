/*
Copyright © 2026 the relate authors.
This file is part of relate.

relate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

relate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with relate.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command relate evaluates DE-9IM topological relationships between
// two GeoJSON geometries.
//
//	relate matrix '{"type":"Polygon",...}' '{"type":"Polygon",...}'
//	relate pattern @a.json @b.json 'T*F**FFF*'
//	relate pred intersects @a.json @b.json
//
// Geometry arguments are inline GeoJSON, or @file references.
package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spatialmodel/relate"
)

type config struct {
	// BoundaryRule selects the line-endpoint boundary classification:
	// mod2 (default), endpoint, multivalent or monovalent.
	BoundaryRule string `toml:"boundary_rule"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

var (
	configFile   string
	boundaryRule string
	verbose      bool
)

func main() {
	root := &cobra.Command{
		Use:   "relate",
		Short: "Evaluate DE-9IM topological relationships between geometries",
		Long: `relate computes the DE-9IM intersection matrix between two
GeoJSON geometries and evaluates topological predicates on it.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to a TOML configuration file.")
	root.PersistentFlags().StringVar(&boundaryRule, "boundary-rule", "",
		"Boundary node rule: mod2, endpoint, multivalent, or monovalent.")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"Enable debug logging.")

	root.AddCommand(matrixCmd(), patternCmd(), predCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix GEOM_A GEOM_B",
		Short: "Print the DE-9IM matrix of two geometries",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, opts, err := loadInputs(args[0], args[1])
			if err != nil {
				return err
			}
			im, err := relate.Relate(a, b, opts...)
			if err != nil {
				return err
			}
			fmt.Println(im)
			return nil
		},
	}
}

func patternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern GEOM_A GEOM_B PATTERN",
		Short: "Match the relationship of two geometries against a DE-9IM pattern",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, opts, err := loadInputs(args[0], args[1])
			if err != nil {
				return err
			}
			ok, err := relate.RelatePattern(a, b, args[2], opts...)
			if err != nil {
				return err
			}
			fmt.Println(ok)
			return nil
		},
	}
}

func predCmd() *cobra.Command {
	names := []string{"intersects", "disjoint", "contains", "within",
		"covers", "coveredby", "crosses", "overlaps", "touches", "equals"}
	return &cobra.Command{
		Use:   "pred NAME GEOM_A GEOM_B",
		Short: "Evaluate a named predicate (" + strings.Join(names, ", ") + ")",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := predicateByName(args[0])
			if err != nil {
				return err
			}
			a, b, opts, err := loadInputs(args[1], args[2])
			if err != nil {
				return err
			}
			ok, err := relate.RelatePredicate(a, b, pred, opts...)
			if err != nil {
				return err
			}
			fmt.Println(ok)
			return nil
		},
	}
}

func predicateByName(name string) (relate.TopologyPredicate, error) {
	switch strings.ToLower(name) {
	case "intersects":
		return relate.IntersectsPredicate(), nil
	case "disjoint":
		return relate.DisjointPredicate(), nil
	case "contains":
		return relate.ContainsPredicate(), nil
	case "within":
		return relate.WithinPredicate(), nil
	case "covers":
		return relate.CoversPredicate(), nil
	case "coveredby":
		return relate.CoveredByPredicate(), nil
	case "crosses":
		return relate.CrossesPredicate(), nil
	case "overlaps":
		return relate.OverlapsPredicate(), nil
	case "touches":
		return relate.TouchesPredicate(), nil
	case "equals":
		return relate.EqualsTopoPredicate(), nil
	}
	return nil, errors.Errorf("unknown predicate %q", name)
}

func loadInputs(argA, argB string) (geom.Geom, geom.Geom, []relate.Option, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	a, err := loadGeometry(argA)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "geometry A")
	}
	b, err := loadGeometry(argB)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "geometry B")
	}
	opts, err := buildOptions(conf)
	if err != nil {
		return nil, nil, nil, err
	}
	return a, b, opts, nil
}

func loadConfig() (config, error) {
	var conf config
	if configFile != "" {
		if _, err := toml.DecodeFile(configFile, &conf); err != nil {
			return conf, errors.Wrapf(err, "reading config %s", configFile)
		}
	}
	// flags override the config file
	if boundaryRule != "" {
		conf.BoundaryRule = boundaryRule
	}
	if verbose {
		conf.Verbose = true
	}
	return conf, nil
}

func buildOptions(conf config) ([]relate.Option, error) {
	var opts []relate.Option
	switch strings.ToLower(conf.BoundaryRule) {
	case "", "mod2":
		// default
	case "endpoint":
		opts = append(opts, relate.WithBoundaryNodeRule(relate.BoundaryRuleEndpoint))
	case "multivalent":
		opts = append(opts, relate.WithBoundaryNodeRule(relate.BoundaryRuleMultivalentEndpoint))
	case "monovalent":
		opts = append(opts, relate.WithBoundaryNodeRule(relate.BoundaryRuleMonovalentEndpoint))
	default:
		return nil, errors.Errorf("unknown boundary rule %q", conf.BoundaryRule)
	}
	if conf.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, relate.WithLogger(logger))
	}
	return opts, nil
}

func loadGeometry(arg string) (geom.Geom, error) {
	data := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		var err error
		data, err = ioutil.ReadFile(arg[1:])
		if err != nil {
			return nil, err
		}
	}
	return decodeGeometry(data)
}

// decodeGeometry reads a GeoJSON geometry of any type. The atomic
// types go through the geom codec; multi-geometries and collections
// are assembled here.
func decodeGeometry(data []byte) (geom.Geom, error) {
	var probe struct {
		Type       string            `json:"type"`
		Geometries []json.RawMessage `json:"geometries"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "parsing GeoJSON")
	}
	switch probe.Type {
	case "Point", "LineString", "Polygon":
		return geojson.Decode(data)
	case "MultiPoint":
		var g struct {
			Coordinates [][]float64 `json:"coordinates"`
		}
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		mp := make(geom.MultiPoint, len(g.Coordinates))
		for i, c := range g.Coordinates {
			p, err := toPoint(c)
			if err != nil {
				return nil, err
			}
			mp[i] = p
		}
		return mp, nil
	case "MultiLineString":
		var g struct {
			Coordinates [][][]float64 `json:"coordinates"`
		}
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		ml := make(geom.MultiLineString, len(g.Coordinates))
		for i, line := range g.Coordinates {
			l, err := toPoints(line)
			if err != nil {
				return nil, err
			}
			ml[i] = geom.LineString(l)
		}
		return ml, nil
	case "MultiPolygon":
		var g struct {
			Coordinates [][][][]float64 `json:"coordinates"`
		}
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, err
		}
		mp := make(geom.MultiPolygon, len(g.Coordinates))
		for i, poly := range g.Coordinates {
			rings := make(geom.Polygon, len(poly))
			for j, ring := range poly {
				r, err := toPoints(ring)
				if err != nil {
					return nil, err
				}
				rings[j] = r
			}
			mp[i] = rings
		}
		return mp, nil
	case "GeometryCollection":
		gc := make(geom.GeometryCollection, len(probe.Geometries))
		for i, raw := range probe.Geometries {
			g, err := decodeGeometry(raw)
			if err != nil {
				return nil, err
			}
			gc[i] = g
		}
		return gc, nil
	}
	return nil, errors.Errorf("unsupported GeoJSON type %q", probe.Type)
}

func toPoint(c []float64) (geom.Point, error) {
	if len(c) < 2 {
		return geom.Point{}, errors.New("coordinate needs at least two ordinates")
	}
	return geom.Point{X: c[0], Y: c[1]}, nil
}

func toPoints(cs [][]float64) ([]geom.Point, error) {
	pts := make([]geom.Point, len(cs))
	for i, c := range cs {
		p, err := toPoint(c)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}
