package taxonomy

import (
	"context"
	"log/slog"
	"sort"

	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/storage"
)

// seedTerm is one curated taxonomy entry. Parent names reference other
// seed terms and resolve to content IDs at load time.
type seedTerm struct {
	text   string
	parent string
}

// seedTaxonomy is the curated vocabulary the pipeline starts from,
// grouped by category.
var seedTaxonomy = map[string][]seedTerm{
	"pediatric_oncology": {
		{text: "childhood leukemia"},
		{text: "acute lymphoblastic leukemia", parent: "childhood leukemia"},
		{text: "neuroblastoma"},
		{text: "wilms tumor"},
		{text: "medulloblastoma"},
		{text: "retinoblastoma"},
		{text: "ewing sarcoma"},
		{text: "osteosarcoma"},
		{text: "pediatric brain tumor"},
		{text: "hepatoblastoma"},
	},
	"adult_oncology": {
		{text: "breast cancer"},
		{text: "lung cancer"},
		{text: "pancreatic cancer"},
		{text: "colorectal cancer"},
		{text: "melanoma"},
		{text: "multiple myeloma"},
		{text: "glioblastoma"},
		{text: "ovarian cancer"},
	},
	"treatment": {
		{text: "chemotherapy"},
		{text: "immunotherapy"},
		{text: "car t cell therapy", parent: "immunotherapy"},
		{text: "proton therapy"},
		{text: "radiation therapy"},
		{text: "bone marrow transplant"},
		{text: "targeted therapy"},
		{text: "gene therapy"},
	},
	"clinical_trials": {
		{text: "clinical trial enrollment"},
		{text: "phase 1 clinical trial"},
		{text: "compassionate use"},
		{text: "expanded access program"},
	},
	"rare_genetic": {
		{text: "cystic fibrosis"},
		{text: "spinal muscular atrophy"},
		{text: "duchenne muscular dystrophy"},
		{text: "fragile x syndrome"},
		{text: "rett syndrome"},
	},
	"rare_neurological": {
		{text: "als symptoms"},
		{text: "huntington disease"},
		{text: "batten disease"},
		{text: "dravet syndrome"},
	},
	"rare_autoimmune": {
		{text: "myasthenia gravis"},
		{text: "scleroderma"},
		{text: "dermatomyositis"},
	},
	"rare_pulmonary": {
		{text: "pulmonary fibrosis"},
		{text: "pulmonary hypertension"},
		{text: "alpha 1 antitrypsin deficiency"},
	},
	"rare_metabolic": {
		{text: "gaucher disease"},
		{text: "pompe disease"},
		{text: "phenylketonuria"},
	},
	"rare_immune": {
		{text: "severe combined immunodeficiency"},
		{text: "common variable immunodeficiency"},
	},
	"rare_cancer": {
		{text: "mesothelioma"},
		{text: "cholangiocarcinoma"},
		{text: "adrenocortical carcinoma"},
	},
	"symptoms": {
		{text: "unexplained weight loss"},
		{text: "night sweats"},
		{text: "chronic fatigue"},
		{text: "swollen lymph nodes"},
		{text: "persistent cough"},
	},
	"diagnosis": {
		{text: "biopsy results"},
		{text: "tumor markers"},
		{text: "pet scan"},
		{text: "genetic testing"},
	},
	"caregiver": {
		{text: "caregiver burnout"},
		{text: "home care for cancer patient"},
		{text: "pediatric cancer parent support"},
	},
	"support": {
		{text: "cancer support groups"},
		{text: "rare disease community"},
		{text: "patient advocacy"},
	},
	"survivorship": {
		{text: "cancer survivorship"},
		{text: "late effects of chemotherapy"},
		{text: "remission monitoring"},
	},
	"costs": {
		{text: "cancer treatment cost"},
		{text: "medical debt"},
		{text: "insurance denial appeal"},
	},
	"emerging": {
		{text: "crispr therapy"},
		{text: "liquid biopsy"},
		{text: "mrna cancer vaccine"},
	},
	"integrative": {
		{text: "palliative care"},
		{text: "cancer nutrition"},
		{text: "integrative oncology"},
	},
	"prevention": {
		{text: "cancer screening guidelines"},
		{text: "brca testing"},
		{text: "hpv vaccine"},
	},
}

// SeedTerms returns the curated vocabulary as terms with parent links
// resolved. The order is deterministic within a category.
func SeedTerms() []*core.Term {
	// Stable category order keeps runs reproducible
	categories := make([]string, 0, len(seedTaxonomy))
	for category := range seedTaxonomy {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var terms []*core.Term
	for _, category := range categories {
		for _, seed := range seedTaxonomy[category] {
			term := &core.Term{
				Text:     seed.text,
				Category: category,
			}
			if seed.parent != "" {
				term.ParentId = core.TermID(seed.parent)
			}
			terms = append(terms, term)
		}
	}
	return terms
}

// Seed loads the curated vocabulary into storage. Terms already present
// are left untouched. Returns the number of terms created.
func Seed(ctx context.Context, terms storage.TermRepository) (int, error) {
	created, err := terms.AddTerms(ctx, SeedTerms()...)
	if err != nil {
		return 0, err
	}
	slog.Default().With("component", "taxonomy").
		Info("seeded taxonomy", "created", len(created))
	return len(created), nil
}
