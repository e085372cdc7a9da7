// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ga

import "github.com/czcorpus/cnc-gokit/collections"

// closed sets of lowercased forms
var (
	// compoundPrepositions lists two-word prepositions
	// (first word + space + second word)
	compoundPrepositions = collections.NewSet(
		"ar aghaidh", "ar chúl", "ar feadh", "ar fud", "ar lorg", "ar nós", "ar son",
		"d' ainneoin", "de bharr", "de chois", "de chóir", "de dheasca",
		"de dheascaibh", "de dhíobháil", "de réir", "de thairbhe", "faoi bhráid",
		"fá bhráid", "fé bhráid", "faoi bhun", "faoi cheann", "faoi choinne",
		"fá choinne", "fé choinne", "faoi dhéin", "faoi réir", "go ceann",
		"i bhfeighil", "i bhfianaise", "i bhfochair", "i dteannta", "i dtrátha",
		"i dtuilleamaí", "i gcaitheamh", "i gceann", "i gcionn", "i gcoinne",
		"i gcóir", "i gcomhair", "i gcosamar", "i gcuideachta", "i lar", "i lár",
		"i láthair", "i leith", "i mbun", "i measc", "i ndiaidh", "i rith",
		"in aghaidh", "in aice", "in ainneoin", "in airicis", "in éadan", "in ionad",
		"le cois", "le haghaidh", "le hais", "le linn", "os cionn", "ós cionn",
		"os coinne", "os comhair", "ós comhair", "tar eis", "tar éis", "thar ceann",
	)

	// unlenitedAfterAr lists surface forms allowed
	// without lenition after "ar"
	unlenitedAfterAr = collections.NewSet(
		"ball", "bannaí", "barr", "bior", "bís", "bith", "bolg", "bord", "bóthar",
		"buile", "bun", "cairde", "camchuairt", "ceal", "ceann", "ceant", "cíos",
		"clár", "clé", "cóimhéid", "comhaois", "comhchéim", "comhréir", "comhscór",
		"conradh", "cosa", "cothrom", "crith", "crochadh", "cuairt", "deireadh",
		"deis", "deoraíocht", "díol", "díotáil", "dóigh", "domhan", "dualgas", "fad",
		"fáil", "fán", "farraige", "feadh", "féarach", "feitheamh", "fionraí",
		"foluain", "fónamh", "foscadh", "fostú", "fuaid", "fud", "gor", "maidin",
		"maos", "marthain", "meán", "meisce", "mire", "muin", "muir", "pinsean",
		"saoire", "seachrán", "seilbh", "seirbhís", "sileadh", "siúl", "snámh",
		"sodar", "son", "taifead", "tairiscint", "taispeáint", "talamh", "teachtadh",
		"tí", "tinneall", "tír", "trastomhas", "turas",
	)

	// unlenitedAfterThar lists surface forms allowed
	// without lenition after "thar"
	unlenitedAfterThar = collections.NewSet(
		"baile", "barr", "bóchna", "bord", "bráid", "bruach", "cailc", "caladh",
		"ceal", "ceann", "ceart", "cionn", "claí", "clár", "cnoc", "cuimse",
		"droichead", "droim", "fál", "farraige", "fóir", "fulaingt", "goimh",
		"gualainn", "maoil", "meán", "muir", "paróiste", "sáile", "sliabh",
		"tairseach", "taobh", "téarma", "teora", "teorainn", "timpeall", "tír",
		"toinn", "tréanmhuir", "tréimhse",
	)
)
