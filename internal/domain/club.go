package domain

// Club represents a registered club organization. CID is the numeric
// club identifier students see; it is unique across clubs.
type Club struct {
	ID           int64   `json:"id"`
	CID          int64   `json:"cid"`
	Name         string  `json:"cname"`
	AdvisorName  string  `json:"caname"`
	President    string  `json:"cpname"`
	ShortName    string  `json:"cshortname"`
	Email        string  `json:"cmail"`
	Mobile       string  `json:"cmobile"`
	PasswordHash string  `json:"-"`
	Description  string  `json:"cdescription"`
	FoundedOn    *string `json:"cdate"`
	Achievement  string  `json:"cachievement"`
	LogoURL      string  `json:"clogo"`
	Social       string  `json:"csocial"`
	Members      []int64 `json:"cmembers"` // confirmed member student UIDs
	Fund         int64   `json:"cfund"`
	IsRecruiting bool    `json:"isRecruiting,omitempty"` // derived, admin listing only
}

// ClubUpdate carries the profile fields a club may edit about itself.
// CID, name and short name are protected and have no field here.
type ClubUpdate struct {
	AdvisorName *string `json:"caname,omitempty"`
	President   *string `json:"cpname,omitempty"`
	Email       *string `json:"cmail,omitempty"`
	Mobile      *string `json:"cmobile,omitempty"`
	Description *string `json:"cdescription,omitempty"`
	FoundedOn   *string `json:"cdate,omitempty"`
	Achievement *string `json:"cachievement,omitempty"`
	Social      *string `json:"csocial,omitempty"`
	LogoURL     *string `json:"clogo,omitempty"`
}

// ClubAdminUpdate carries the fields an administrator may edit on any
// club record.
type ClubAdminUpdate struct {
	Name        *string `json:"cname,omitempty"`
	ShortName   *string `json:"cshortname,omitempty"`
	Email       *string `json:"cmail,omitempty"`
	Mobile      *string `json:"cmobile,omitempty"`
	Description *string `json:"cdescription,omitempty"`
	FoundedOn   *string `json:"cdate,omitempty"`
}

// HasMember reports whether the student UID holds a confirmed
// membership in the club.
func (c *Club) HasMember(uid int64) bool {
	return containsID(c.Members, uid)
}

// SetMember adds or removes the UID on the roster. Returns whether the
// roster changed.
func (c *Club) SetMember(uid int64, member bool) bool {
	var changed bool
	if member {
		c.Members, changed = appendID(c.Members, uid)
	} else {
		c.Members, changed = removeID(c.Members, uid)
	}
	return changed
}
